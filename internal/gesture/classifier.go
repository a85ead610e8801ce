// Package gesture provides geometric hand pose classification, motion
// detection over trailing wrist paths, and the bounded event history the
// temporal checks run against.
package gesture

import (
	"github.com/ayusman/mudra/internal/tracker"
)

// Label identifies a recognized gesture.
type Label string

// Static pose labels.
const (
	LabelFist       Label = "FIST"
	LabelOpenHand   Label = "OPEN_HAND"
	LabelOK         Label = "OK"
	LabelPointing   Label = "POINTING"
	LabelPeace      Label = "PEACE"
	LabelThumbsUp   Label = "THUMBS_UP"
	LabelThumbsDown Label = "THUMBS_DOWN"
	LabelPinch      Label = "PINCH"
)

// Dynamic motion labels.
const (
	LabelSwipeRight Label = "SWIPE_RIGHT"
	LabelSwipeLeft  Label = "SWIPE_LEFT"
	LabelSwipeUp    Label = "SWIPE_UP"
	LabelSwipeDown  Label = "SWIPE_DOWN"
	LabelWave       Label = "WAVE"
)

// IsDynamic reports whether the label names a motion gesture rather than
// a static pose.
func IsDynamic(l Label) bool {
	switch l {
	case LabelSwipeRight, LabelSwipeLeft, LabelSwipeUp, LabelSwipeDown, LabelWave:
		return true
	}
	return false
}

// FingerFlags is the per-finger extension vector derived from one frame.
type FingerFlags struct {
	Thumb  bool `json:"thumb"`
	Index  bool `json:"index"`
	Middle bool `json:"middle"`
	Ring   bool `json:"ring"`
	Pinky  bool `json:"pinky"`
}

// Count returns how many fingers are extended.
func (f FingerFlags) Count() int {
	n := 0
	for _, ext := range [5]bool{f.Thumb, f.Index, f.Middle, f.Ring, f.Pinky} {
		if ext {
			n++
		}
	}
	return n
}

// Config holds the geometric thresholds of the static classifier.
// Ratios compare tip-to-wrist against base-to-wrist spans; the distance
// thresholds are in hand-scale units, multiples of the wrist to middle
// MCP span, so they hold up as the hand moves nearer or farther from the
// camera.
type Config struct {
	// ExtendedRatio is the tip/base span ratio above which a finger
	// counts as extended.
	ExtendedRatio float64
	// ThumbRatio is the extension ratio for the thumb, whose base sits
	// closer to the wrist.
	ThumbRatio float64
	// TouchDistance is the thumb tip to index tip distance below which
	// the two count as touching.
	TouchDistance float64
	// SpreadDistance is the index tip to pinky tip distance above which
	// the hand counts as spread.
	SpreadDistance float64
	// ThumbAxisOffset is the vertical offset of the thumb tip from the
	// thumb MCP beyond which the thumb counts as pointing up or down.
	ThumbAxisOffset float64
}

// DefaultConfig returns the calibrated classifier thresholds.
func DefaultConfig() Config {
	return Config{
		ExtendedRatio:   1.2,
		ThumbRatio:      1.1,
		TouchDistance:   0.35,
		SpreadDistance:  1.1,
		ThumbAxisOffset: 0.35,
	}
}

// Result is a successful static classification.
type Result struct {
	Label      Label
	Flags      FingerFlags
	Confidence float64
}

// staticConfidence is the flat confidence carried by every static match.
const staticConfidence = 0.8

// measurements are the derived geometric facts one rule pass runs over.
type measurements struct {
	flags     FingerFlags
	touch     bool
	thumbUp   bool
	thumbDown bool
	spread    bool
}

type rule struct {
	label Label
	match func(m measurements) bool
}

// Classifier matches hand frames against a fixed, ordered rule list.
// The first matching rule wins; a frame matching no rule is a normal
// outcome, not an error.
type Classifier struct {
	cfg   Config
	rules []rule
}

// NewClassifier creates a Classifier with the given thresholds.
func NewClassifier(cfg Config) *Classifier {
	c := &Classifier{cfg: cfg}
	c.rules = []rule{
		{LabelOK, func(m measurements) bool {
			return m.touch && m.flags.Middle && m.flags.Ring && m.flags.Pinky
		}},
		{LabelPeace, func(m measurements) bool {
			return m.flags.Index && m.flags.Middle && !m.flags.Ring && !m.flags.Pinky
		}},
		{LabelPointing, func(m measurements) bool {
			return m.flags.Index && !m.flags.Middle && !m.flags.Ring && !m.flags.Pinky
		}},
		{LabelThumbsUp, func(m measurements) bool {
			return m.thumbUp && m.flags.Thumb && m.flags.Count() == 1
		}},
		{LabelThumbsDown, func(m measurements) bool {
			return m.thumbDown && m.flags.Thumb && m.flags.Count() == 1
		}},
		{LabelOpenHand, func(m measurements) bool {
			return m.flags.Count() == 5 && m.spread
		}},
		{LabelPinch, func(m measurements) bool {
			return m.flags.Index && m.flags.Middle && m.flags.Ring && m.flags.Pinky && !m.spread
		}},
		{LabelFist, func(m measurements) bool {
			return m.flags.Count() == 0
		}},
	}
	return c
}

// Classify runs the ordered rule list against the frame. The second
// return value is false when no rule matched.
func (c *Classifier) Classify(frame *tracker.HandFrame) (Result, bool) {
	if frame == nil {
		return Result{}, false
	}

	m := c.measure(frame)
	for _, r := range c.rules {
		if r.match(m) {
			return Result{
				Label:      r.label,
				Flags:      m.flags,
				Confidence: staticConfidence,
			}, true
		}
	}
	return Result{Flags: m.flags}, false
}

// Flags derives the finger extension vector without running the rules.
func (c *Classifier) Flags(frame *tracker.HandFrame) FingerFlags {
	if frame == nil {
		return FingerFlags{}
	}
	return c.measure(frame).flags
}

func (c *Classifier) measure(frame *tracker.HandFrame) measurements {
	p := &frame.Points
	scale := frame.Scale()

	m := measurements{
		flags: FingerFlags{
			Thumb:  c.extended(frame, tracker.ThumbMCP, tracker.ThumbTip, c.cfg.ThumbRatio),
			Index:  c.extended(frame, tracker.IndexMCP, tracker.IndexTip, c.cfg.ExtendedRatio),
			Middle: c.extended(frame, tracker.MiddleMCP, tracker.MiddleTip, c.cfg.ExtendedRatio),
			Ring:   c.extended(frame, tracker.RingMCP, tracker.RingTip, c.cfg.ExtendedRatio),
			Pinky:  c.extended(frame, tracker.PinkyMCP, tracker.PinkyTip, c.cfg.ExtendedRatio),
		},
	}

	m.touch = tracker.Distance(p[tracker.ThumbTip], p[tracker.IndexTip]) < c.cfg.TouchDistance*scale
	m.spread = tracker.Distance(p[tracker.IndexTip], p[tracker.PinkyTip]) > c.cfg.SpreadDistance*scale

	offset := c.cfg.ThumbAxisOffset * scale
	m.thumbUp = p[tracker.ThumbTip].Y < p[tracker.ThumbMCP].Y-offset
	m.thumbDown = p[tracker.ThumbTip].Y > p[tracker.ThumbMCP].Y+offset

	return m
}

// extended applies the span ratio test. Missing landmarks make the tip
// span read as 0, so the finger quietly counts as not extended.
func (c *Classifier) extended(frame *tracker.HandFrame, base, tip int, ratio float64) bool {
	wrist := frame.Points[tracker.Wrist]
	tipSpan := tracker.Distance(frame.Points[tip], wrist)
	baseSpan := tracker.Distance(frame.Points[base], wrist)
	return tipSpan > ratio*baseSpan
}
