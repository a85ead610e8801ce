// Package mood provides facial expression classification over face
// landmark frames, and the bounded sample history its aggregate queries
// run against.
package mood

import (
	"github.com/ayusman/mudra/internal/tracker"
)

// Mood is a classified facial expression.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodSad       Mood = "sad"
	MoodAngry     Mood = "angry"
	MoodSurprised Mood = "surprised"
	MoodFearful   Mood = "fearful"
	MoodDisgusted Mood = "disgusted"
	MoodNeutral   Mood = "neutral"
)

// Negative reports whether the mood belongs to the declining set used by
// trend analysis.
func Negative(m Mood) bool {
	switch m {
	case MoodSad, MoodAngry, MoodFearful, MoodDisgusted:
		return true
	}
	return false
}

// Features are the derived facial measurements one classification runs
// over. All values are in normalized image units.
type Features struct {
	// EyeOpen is the average vertical lid gap across both eyes.
	EyeOpen float64 `json:"eye_open"`
	// MouthAspect is mouth height over mouth width.
	MouthAspect float64 `json:"mouth_aspect"`
	// BrowHeight is the mean vertical gap between the brows and the
	// upper lids; larger means raised, smaller means furrowed.
	BrowHeight float64 `json:"brow_height"`
	// Curvature is the mouth centre y minus the mean corner y; negative
	// values mean raised corners, the smile side of the measure.
	Curvature float64 `json:"curvature"`
	// MouthWidth and MouthHeight are the raw outer-lip spans.
	MouthWidth  float64 `json:"mouth_width"`
	MouthHeight float64 `json:"mouth_height"`
}

// ExtractFeatures derives the feature vector from a face frame.
func ExtractFeatures(frame *tracker.FaceFrame) Features {
	p := &frame.Points

	rightOpen := (tracker.Distance(p[tracker.RightEyeUpperA], p[tracker.RightEyeLowerA]) +
		tracker.Distance(p[tracker.RightEyeUpperB], p[tracker.RightEyeLowerB])) / 2
	leftOpen := (tracker.Distance(p[tracker.LeftEyeUpperA], p[tracker.LeftEyeLowerA]) +
		tracker.Distance(p[tracker.LeftEyeUpperB], p[tracker.LeftEyeLowerB])) / 2

	width := tracker.Distance(p[tracker.MouthRightCorner], p[tracker.MouthLeftCorner])
	height := tracker.Distance(p[tracker.UpperLipTop], p[tracker.LowerLipBottom])
	aspect := 0.0
	if width > 0 {
		aspect = height / width
	}

	browY := 0.0
	for i := tracker.RightBrowStart; i <= tracker.LeftBrowEnd; i++ {
		browY += p[i].Y
	}
	browY /= float64(tracker.LeftBrowEnd - tracker.RightBrowStart + 1)

	eyeTopY := (p[tracker.RightEyeUpperA].Y + p[tracker.RightEyeUpperB].Y +
		p[tracker.LeftEyeUpperA].Y + p[tracker.LeftEyeUpperB].Y) / 4

	centreY := (p[tracker.UpperLipTop].Y + p[tracker.LowerLipBottom].Y) / 2
	cornerY := (p[tracker.MouthRightCorner].Y + p[tracker.MouthLeftCorner].Y) / 2

	return Features{
		EyeOpen:     (rightOpen + leftOpen) / 2,
		MouthAspect: aspect,
		BrowHeight:  eyeTopY - browY,
		Curvature:   centreY - cornerY,
		MouthWidth:  width,
		MouthHeight: height,
	}
}

// Config holds the expression thresholds. The values are empirically
// calibrated against the feature formulas above; treat them as tunables,
// not derived quantities.
type Config struct {
	// SmileCurve and FrownCurve bound the curvature measure on its
	// smile (negative) and frown (positive) sides.
	SmileCurve float64
	FrownCurve float64
	// WideEye is the lid gap above which eyes count as wide open.
	WideEye float64
	// GapeAspect is the mouth aspect above which the mouth counts as
	// gaping; TightAspect the one below which it counts as pressed.
	GapeAspect  float64
	TightAspect float64
	// BrowFurrow is the brow gap below which brows count as furrowed;
	// BrowRaised the one above which they count as raised.
	BrowFurrow float64
	BrowRaised float64
	// NeutralConfidence is carried by the neutral fallback.
	NeutralConfidence float64
}

// DefaultConfig returns the calibrated expression thresholds.
func DefaultConfig() Config {
	return Config{
		SmileCurve:        0.012,
		FrownCurve:        0.012,
		WideEye:           0.028,
		GapeAspect:        0.55,
		TightAspect:       0.25,
		BrowFurrow:        0.03,
		BrowRaised:        0.055,
		NeutralConfidence: 0.5,
	}
}

// Sample is one classified mood observation.
type Sample struct {
	Mood       Mood     `json:"mood"`
	Confidence float64  `json:"confidence"`
	Features   Features `json:"features"`
	Timestamp  int64    `json:"timestamp"` // Unix milliseconds
}

type moodRule struct {
	mood       Mood
	match      func(f Features) bool
	confidence func(f Features) float64
}

// Classifier matches face frames against a fixed, ordered rule list.
// The first matching rule wins and computes its own confidence from the
// magnitude of its defining feature; neutral is the fallback, so every
// frame yields a mood.
type Classifier struct {
	cfg   Config
	rules []moodRule
}

// NewClassifier creates a Classifier with the given thresholds.
func NewClassifier(cfg Config) *Classifier {
	c := &Classifier{cfg: cfg}
	c.rules = []moodRule{
		{MoodHappy,
			func(f Features) bool { return f.Curvature <= -cfg.SmileCurve },
			func(f Features) float64 { return clamp01(0.5 + (-f.Curvature-cfg.SmileCurve)*20) }},
		{MoodSad,
			func(f Features) bool {
				return f.Curvature >= cfg.FrownCurve && f.BrowHeight > cfg.BrowFurrow && f.EyeOpen < cfg.WideEye
			},
			func(f Features) float64 { return clamp01(0.5 + (f.Curvature-cfg.FrownCurve)*20) }},
		{MoodSurprised,
			func(f Features) bool { return f.EyeOpen >= cfg.WideEye && f.MouthAspect >= cfg.GapeAspect },
			func(f Features) float64 { return clamp01(0.4 + f.MouthAspect/2) }},
		{MoodAngry,
			func(f Features) bool { return f.BrowHeight <= cfg.BrowFurrow && f.MouthAspect <= cfg.TightAspect },
			func(f Features) float64 { return clamp01(0.5 + (cfg.BrowFurrow-f.BrowHeight)*20) }},
		{MoodFearful,
			func(f Features) bool { return f.EyeOpen >= cfg.WideEye && f.BrowHeight >= cfg.BrowRaised },
			func(f Features) float64 { return clamp01(0.5 + (f.EyeOpen-cfg.WideEye)*25) }},
		{MoodDisgusted,
			func(f Features) bool { return f.BrowHeight <= cfg.BrowFurrow && f.Curvature >= cfg.FrownCurve },
			func(f Features) float64 { return clamp01(0.5 + (f.Curvature-cfg.FrownCurve)*15) }},
	}
	return c
}

// Classify derives features from the frame and runs the ordered rule
// list over them.
func (c *Classifier) Classify(frame *tracker.FaceFrame) Sample {
	f := ExtractFeatures(frame)

	for _, r := range c.rules {
		if r.match(f) {
			return Sample{
				Mood:       r.mood,
				Confidence: r.confidence(f),
				Features:   f,
				Timestamp:  frame.Timestamp,
			}
		}
	}
	return Sample{
		Mood:       MoodNeutral,
		Confidence: c.cfg.NeutralConfidence,
		Features:   f,
		Timestamp:  frame.Timestamp,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
