package tracker

// Face landmark index ranges following the 68-point annotation scheme
// used by dlib-style face trackers. Indices are inclusive.
const (
	JawStart        = 0
	JawEnd          = 16
	RightBrowStart  = 17
	RightBrowEnd    = 21
	LeftBrowStart   = 22
	LeftBrowEnd     = 26
	NoseBridgeStart = 27
	NoseBridgeEnd   = 30
	NoseBottomStart = 31
	NoseBottomEnd   = 35
	RightEyeStart   = 36
	RightEyeEnd     = 41
	LeftEyeStart    = 42
	LeftEyeEnd      = 47
	OuterLipStart   = 48
	OuterLipEnd     = 59
	InnerLipStart   = 60
	InnerLipEnd     = 67

	NumFaceLandmarks = 68
)

// Named indices for the points the mood features measure directly.
const (
	MouthRightCorner = 48
	UpperLipTop      = 51
	MouthLeftCorner  = 54
	LowerLipBottom   = 57

	RightEyeUpperA = 37
	RightEyeUpperB = 38
	RightEyeLowerA = 41
	RightEyeLowerB = 40
	LeftEyeUpperA  = 43
	LeftEyeUpperB  = 44
	LeftEyeLowerA  = 47
	LeftEyeLowerB  = 46
)

// FaceFrame represents the 68 face landmarks reported on one tracker tick.
type FaceFrame struct {
	Points    [NumFaceLandmarks]Point3D `json:"points"`
	Score     float64                   `json:"score"`
	Timestamp int64                     `json:"timestamp,omitempty"` // Unix milliseconds
}
