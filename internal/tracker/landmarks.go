// Package tracker defines the landmark frame types delivered by the
// external feature-point tracker, along with the geometry helpers the
// classification layers build on.
package tracker

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point in space with x, y, z coordinates.
// Coordinates are normalized image coordinates as reported by the tracker;
// Z is depth relative to the reference point and may be absent (zero).
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// IsZero reports whether the point carries no data. Trackers omit
// landmarks they could not resolve, which decode as the zero value.
func (p Point3D) IsZero() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}

// HandFrame represents the 21 hand landmarks reported for one hand on
// one tracker tick.
type HandFrame struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
	Timestamp  int64                 `json:"timestamp,omitempty"` // Unix milliseconds
}

// Wrist returns the wrist reference point of the frame.
func (h *HandFrame) Wrist() Point3D {
	return h.Points[Wrist]
}

// Distance calculates the Euclidean distance between two landmark points.
// If either point is missing (zero-valued) the distance is reported as 0,
// so downstream threshold comparisons quietly see a degenerate value
// instead of failing. Callers relying on this must tolerate the rare
// spurious near-zero result for genuinely missing landmarks.
func Distance(a, b Point3D) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Normalize normalizes the hand landmarks relative to wrist position and
// hand size. The normalized landmarks have the wrist at origin (0,0,0)
// and are scaled so that the distance from wrist to middle finger MCP is
// 1.0. Returns a new HandFrame instance with normalized points.
func (h *HandFrame) Normalize() *HandFrame {
	if h == nil {
		return nil
	}

	normalized := &HandFrame{
		Handedness: h.Handedness,
		Score:      h.Score,
		Timestamp:  h.Timestamp,
	}

	wrist := h.Points[Wrist]
	for i := 0; i < NumLandmarks; i++ {
		normalized.Points[i] = Point3D{
			X: h.Points[i].X - wrist.X,
			Y: h.Points[i].Y - wrist.Y,
			Z: h.Points[i].Z - wrist.Z,
		}
	}

	// Scale by the wrist to middle MCP distance, the most stable span
	// across poses.
	m := normalized.Points[MiddleMCP]
	scale := math.Sqrt(m.X*m.X + m.Y*m.Y + m.Z*m.Z)
	if scale < 1e-10 {
		return normalized
	}

	for i := 0; i < NumLandmarks; i++ {
		normalized.Points[i].X /= scale
		normalized.Points[i].Y /= scale
		normalized.Points[i].Z /= scale
	}

	return normalized
}

// Scale returns the wrist to middle MCP distance of the frame, the span
// used as the hand-size unit for threshold comparisons.
func (h *HandFrame) Scale() float64 {
	return Distance(h.Points[Wrist], h.Points[MiddleMCP])
}
