package mood

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/tracker"
)

const epsilon = 1e-9

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	tests := []struct {
		name     string
		frame    tracker.FaceFrame
		want     Mood
		wantConf float64
	}{
		{"neutral", tracker.NeutralFace(), MoodNeutral, 0.5},
		{"happy", tracker.HappyFace(), MoodHappy, 0.71},
		{"sad", tracker.SadFace(), MoodSad, 0.71},
		{"surprised", tracker.SurprisedFace(), MoodSurprised, 0.9},
		{"angry", tracker.AngryFace(), MoodAngry, 0.8},
		{"fearful", tracker.FearfulFace(), MoodFearful, 0.65},
		{"disgusted", tracker.DisgustedFace(), MoodDisgusted, 0.845},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := c.Classify(&tt.frame)
			if s.Mood != tt.want {
				t.Fatalf("Classify = %s, want %s", s.Mood, tt.want)
			}
			if math.Abs(s.Confidence-tt.wantConf) > epsilon {
				t.Errorf("Confidence = %f, want %f", s.Confidence, tt.wantConf)
			}
			if s.Confidence < 0 || s.Confidence > 1 {
				t.Errorf("Confidence %f outside [0,1]", s.Confidence)
			}
		})
	}
}

func TestClassifier_SurprisedWinsSharedEyeCondition(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	// Wide eyes, gaping mouth and raised brows satisfy both the
	// surprised and fearful predicates; the earlier rule must win.
	f := tracker.SurprisedFace()
	for i := tracker.RightBrowStart; i <= tracker.LeftBrowEnd; i++ {
		f.Points[i].Y = 0.33
	}

	if s := c.Classify(&f); s.Mood != MoodSurprised {
		t.Errorf("Classify = %s, want %s", s.Mood, MoodSurprised)
	}
}

func TestClassifier_TimestampCarriedFromFrame(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	f := tracker.HappyFace()
	f.Timestamp = 123456

	if s := c.Classify(&f); s.Timestamp != 123456 {
		t.Errorf("Timestamp = %d, want 123456", s.Timestamp)
	}
}

func TestExtractFeatures(t *testing.T) {
	f := tracker.NeutralFace()
	feat := ExtractFeatures(&f)

	if math.Abs(feat.EyeOpen-0.02) > epsilon {
		t.Errorf("EyeOpen = %f, want 0.02", feat.EyeOpen)
	}
	if math.Abs(feat.MouthWidth-0.12) > epsilon {
		t.Errorf("MouthWidth = %f, want 0.12", feat.MouthWidth)
	}
	if math.Abs(feat.MouthHeight-0.025) > epsilon {
		t.Errorf("MouthHeight = %f, want 0.025", feat.MouthHeight)
	}
	if math.Abs(feat.MouthAspect-0.025/0.12) > epsilon {
		t.Errorf("MouthAspect = %f, want %f", feat.MouthAspect, 0.025/0.12)
	}
	if math.Abs(feat.BrowHeight-0.044) > epsilon {
		t.Errorf("BrowHeight = %f, want 0.044", feat.BrowHeight)
	}
	if math.Abs(feat.Curvature-0.0025) > epsilon {
		t.Errorf("Curvature = %f, want 0.0025", feat.Curvature)
	}
}

func TestExtractFeatures_CurvatureSides(t *testing.T) {
	happy := tracker.HappyFace()
	if f := ExtractFeatures(&happy); f.Curvature >= 0 {
		t.Errorf("happy curvature = %f, want negative", f.Curvature)
	}

	sad := tracker.SadFace()
	if f := ExtractFeatures(&sad); f.Curvature <= 0 {
		t.Errorf("sad curvature = %f, want positive", f.Curvature)
	}
}

func TestNegative(t *testing.T) {
	for _, m := range []Mood{MoodSad, MoodAngry, MoodFearful, MoodDisgusted} {
		if !Negative(m) {
			t.Errorf("Negative(%s) = false, want true", m)
		}
	}
	for _, m := range []Mood{MoodHappy, MoodSurprised, MoodNeutral} {
		if Negative(m) {
			t.Errorf("Negative(%s) = true, want false", m)
		}
	}
}
