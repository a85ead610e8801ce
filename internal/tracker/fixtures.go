package tracker

import "math"

// Preset frames for tests. Each constructor returns a fresh value laid
// out in normalized image coordinates (y grows downward), with the wrist
// anchored around (0.5, 0.8) the way a hand sits in a typical capture.

// ThumbsUpFrame returns a preset HandFrame representing a thumbs up pose.
// The thumb is extended upward while other fingers are curled.
func ThumbsUpFrame() HandFrame {
	f := HandFrame{
		Handedness: "Right",
		Score:      0.95,
	}

	// Wrist at origin
	f.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended upward (pointing up, Y decreases going up)
	f.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.0}
	f.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.65, Z: 0.0}
	f.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.50, Z: 0.0}
	f.Points[ThumbTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Index finger curled (knuckles close together, tip near palm)
	f.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.70, Z: -0.02}
	f.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.68, Z: -0.05}
	f.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.70, Z: -0.04}
	f.Points[IndexTip] = Point3D{X: 0.50, Y: 0.72, Z: -0.02}

	// Middle finger curled
	f.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.68, Z: -0.02}
	f.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.66, Z: -0.05}
	f.Points[MiddleDIP] = Point3D{X: 0.47, Y: 0.68, Z: -0.04}
	f.Points[MiddleTip] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}

	// Ring finger curled
	f.Points[RingMCP] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}
	f.Points[RingPIP] = Point3D{X: 0.45, Y: 0.68, Z: -0.05}
	f.Points[RingDIP] = Point3D{X: 0.42, Y: 0.70, Z: -0.04}
	f.Points[RingTip] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}

	// Pinky finger curled, tip tucked in toward the wrist
	f.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}
	f.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.70, Z: -0.05}
	f.Points[PinkyDIP] = Point3D{X: 0.38, Y: 0.73, Z: -0.04}
	f.Points[PinkyTip] = Point3D{X: 0.37, Y: 0.75, Z: -0.02}

	return f
}

// OpenHandFrame returns a preset HandFrame with all five fingers extended
// and spread.
func OpenHandFrame() HandFrame {
	f := HandFrame{
		Handedness: "Right",
		Score:      0.95,
	}

	// Wrist at base
	f.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended to the side
	f.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	f.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	f.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	f.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	// Index finger extended upward
	f.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	f.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	f.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	f.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger extended upward (slightly longer)
	f.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	f.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	f.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	f.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended upward
	f.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	f.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	f.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	f.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	// Pinky finger extended upward
	f.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	f.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	f.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	f.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return f
}

// FistFrame returns a HandFrame with all fingers curled, thumb included.
func FistFrame() HandFrame {
	f := ThumbsUpFrame()

	// Curl the thumb across the palm
	f.Points[ThumbIP] = Point3D{X: 0.56, Y: 0.72, Z: -0.02}
	f.Points[ThumbTip] = Point3D{X: 0.54, Y: 0.74, Z: -0.02}

	return f
}

// PointingFrame returns a HandFrame with only the index finger extended.
func PointingFrame() HandFrame {
	f := FistFrame()

	// Extend the index finger upward
	f.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.55, Z: 0.0}
	f.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.45, Z: 0.0}
	f.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	return f
}

// PeaceFrame returns a HandFrame with index and middle fingers extended
// in a V, ring and pinky curled.
func PeaceFrame() HandFrame {
	f := PointingFrame()

	// Extend the middle finger alongside the index
	f.Points[MiddlePIP] = Point3D{X: 0.49, Y: 0.52, Z: 0.0}
	f.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.40, Z: 0.0}
	f.Points[MiddleTip] = Point3D{X: 0.48, Y: 0.28, Z: 0.0}

	return f
}

// OKFrame returns a HandFrame with thumb and index fingertips touching
// in a ring, remaining fingers extended.
func OKFrame() HandFrame {
	f := OpenHandFrame()

	// Bring thumb and index tips together
	f.Points[ThumbIP] = Point3D{X: 0.62, Y: 0.60, Z: 0.01}
	f.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.56, Z: 0.0}
	f.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.60, Z: 0.0}
	f.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.57, Z: 0.0}
	f.Points[IndexTip] = Point3D{X: 0.61, Y: 0.555, Z: 0.0}

	return f
}

// ThumbsDownFrame returns a HandFrame with the thumb extended downward,
// built by reflecting the thumbs up pose vertically.
func ThumbsDownFrame() HandFrame {
	f := ThumbsUpFrame()
	for i := 0; i < NumLandmarks; i++ {
		f.Points[i].Y = 1.2 - f.Points[i].Y
	}
	return f
}

// PinchFrame returns a HandFrame with the four fingers extended but
// gathered together rather than spread.
func PinchFrame() HandFrame {
	f := OpenHandFrame()

	// Gather the fingertips around a common point
	f.Points[IndexTip] = Point3D{X: 0.54, Y: 0.38, Z: 0.0}
	f.Points[MiddleTip] = Point3D{X: 0.52, Y: 0.36, Z: 0.0}
	f.Points[RingTip] = Point3D{X: 0.50, Y: 0.38, Z: 0.0}
	f.Points[PinkyTip] = Point3D{X: 0.49, Y: 0.41, Z: 0.0}
	f.Points[IndexDIP] = Point3D{X: 0.55, Y: 0.46, Z: 0.0}
	f.Points[MiddleDIP] = Point3D{X: 0.52, Y: 0.45, Z: 0.0}
	f.Points[RingDIP] = Point3D{X: 0.49, Y: 0.46, Z: 0.0}
	f.Points[PinkyDIP] = Point3D{X: 0.47, Y: 0.49, Z: 0.0}

	return f
}

// TranslateTo returns a copy of the frame shifted so its wrist sits at
// (x, y). Relative geometry, and therefore static classification, is
// unchanged; motion tests use this to trace wrist paths.
func TranslateTo(f HandFrame, x, y float64) HandFrame {
	dx := x - f.Points[Wrist].X
	dy := y - f.Points[Wrist].Y
	for i := 0; i < NumLandmarks; i++ {
		f.Points[i].X += dx
		f.Points[i].Y += dy
	}
	return f
}

// NeutralFace returns a preset FaceFrame with a relaxed expression:
// eyes half open, mouth closed, corners level with the mouth centre.
func NeutralFace() FaceFrame {
	f := FaceFrame{Score: 0.9}

	// Jaw line, an arc from temple to temple through the chin
	for i := JawStart; i <= JawEnd; i++ {
		t := float64(i-JawStart) / float64(JawEnd-JawStart) // 0..1 across the jaw
		f.Points[i] = Point3D{
			X: 0.5 - 0.14*math.Cos(t*math.Pi),
			Y: 0.40 + 0.32*math.Sin(t*math.Pi),
		}
	}

	// Brows
	browYs := [5]float64{0.37, 0.365, 0.36, 0.365, 0.37}
	for i := 0; i < 5; i++ {
		f.Points[RightBrowStart+i] = Point3D{X: 0.38 + 0.02*float64(i), Y: browYs[i]}
		f.Points[LeftBrowStart+i] = Point3D{X: 0.54 + 0.02*float64(i), Y: browYs[i]}
	}

	// Nose bridge and base
	for i := 0; i <= 3; i++ {
		f.Points[NoseBridgeStart+i] = Point3D{X: 0.50, Y: 0.44 + 0.03*float64(i)}
	}
	noseYs := [5]float64{0.555, 0.56, 0.565, 0.56, 0.555}
	for i := 0; i < 5; i++ {
		f.Points[NoseBottomStart+i] = Point3D{X: 0.46 + 0.02*float64(i), Y: noseYs[i]}
	}

	// Eyes: six points each, upper lid at 0.41, lower lid at 0.43
	rightEyeX := [6]float64{0.40, 0.42, 0.44, 0.46, 0.44, 0.42}
	eyeYs := [6]float64{0.42, 0.41, 0.41, 0.42, 0.43, 0.43}
	for i := 0; i < 6; i++ {
		f.Points[RightEyeStart+i] = Point3D{X: rightEyeX[i], Y: eyeYs[i]}
		f.Points[LeftEyeStart+i] = Point3D{X: rightEyeX[i] + 0.14, Y: eyeYs[i]}
	}

	// Outer lip ring, corners at 48 and 54
	f.Points[MouthRightCorner] = Point3D{X: 0.44, Y: 0.62}
	f.Points[49] = Point3D{X: 0.46, Y: 0.615}
	f.Points[50] = Point3D{X: 0.48, Y: 0.61}
	f.Points[UpperLipTop] = Point3D{X: 0.50, Y: 0.61}
	f.Points[52] = Point3D{X: 0.52, Y: 0.61}
	f.Points[53] = Point3D{X: 0.54, Y: 0.615}
	f.Points[MouthLeftCorner] = Point3D{X: 0.56, Y: 0.62}
	f.Points[55] = Point3D{X: 0.54, Y: 0.63}
	f.Points[56] = Point3D{X: 0.52, Y: 0.635}
	f.Points[LowerLipBottom] = Point3D{X: 0.50, Y: 0.635}
	f.Points[58] = Point3D{X: 0.48, Y: 0.635}
	f.Points[59] = Point3D{X: 0.46, Y: 0.63}

	// Inner lip ring
	innerX := [8]float64{0.46, 0.48, 0.50, 0.52, 0.54, 0.52, 0.50, 0.48}
	innerY := [8]float64{0.622, 0.62, 0.62, 0.62, 0.622, 0.628, 0.63, 0.628}
	for i := 0; i < 8; i++ {
		f.Points[InnerLipStart+i] = Point3D{X: innerX[i], Y: innerY[i]}
	}

	return f
}

// HappyFace returns a FaceFrame whose mouth corners sit past the mouth
// centre on the smile side of the curvature measure.
func HappyFace() FaceFrame {
	f := NeutralFace()
	f.Points[MouthRightCorner].Y = 0.645
	f.Points[MouthLeftCorner].Y = 0.645
	return f
}

// SadFace returns a FaceFrame with mouth corners on the frown side of
// the curvature measure and eyes at rest.
func SadFace() FaceFrame {
	f := NeutralFace()
	f.Points[MouthRightCorner].Y = 0.60
	f.Points[MouthLeftCorner].Y = 0.60
	return f
}

// SurprisedFace returns a FaceFrame with wide eyes and a dropped jaw.
func SurprisedFace() FaceFrame {
	f := NeutralFace()
	widenEyes(&f, 0.405, 0.435)
	f.Points[LowerLipBottom].Y = 0.70
	f.Points[MouthRightCorner] = Point3D{X: 0.455, Y: 0.62}
	f.Points[MouthLeftCorner] = Point3D{X: 0.545, Y: 0.62}
	return f
}

// AngryFace returns a FaceFrame with furrowed brows and a tight mouth.
func AngryFace() FaceFrame {
	f := NeutralFace()
	setBrows(&f, 0.395)
	return f
}

// FearfulFace returns a FaceFrame with wide eyes, raised brows and a
// slightly open mouth that falls short of a surprise gape.
func FearfulFace() FaceFrame {
	f := NeutralFace()
	widenEyes(&f, 0.403, 0.437)
	setBrows(&f, 0.34)
	f.Points[LowerLipBottom].Y = 0.655
	f.Points[MouthRightCorner].Y = 0.625
	f.Points[MouthLeftCorner].Y = 0.625
	return f
}

// DisgustedFace returns a FaceFrame with furrowed brows and a downturned
// open mouth.
func DisgustedFace() FaceFrame {
	f := NeutralFace()
	setBrows(&f, 0.39)
	f.Points[MouthRightCorner].Y = 0.60
	f.Points[MouthLeftCorner].Y = 0.60
	f.Points[UpperLipTop].Y = 0.605
	f.Points[LowerLipBottom].Y = 0.665
	return f
}

func widenEyes(f *FaceFrame, upperY, lowerY float64) {
	f.Points[RightEyeUpperA].Y = upperY
	f.Points[RightEyeUpperB].Y = upperY
	f.Points[LeftEyeUpperA].Y = upperY
	f.Points[LeftEyeUpperB].Y = upperY
	f.Points[RightEyeLowerA].Y = lowerY
	f.Points[RightEyeLowerB].Y = lowerY
	f.Points[LeftEyeLowerA].Y = lowerY
	f.Points[LeftEyeLowerB].Y = lowerY
}

func setBrows(f *FaceFrame, y float64) {
	for i := RightBrowStart; i <= LeftBrowEnd; i++ {
		f.Points[i].Y = y
	}
}
