package mood

// HistorySize is the bounded capacity of the mood history; appending
// past it evicts the oldest sample.
const HistorySize = 30

// Trend summarizes the direction of recent mood samples.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// trendShare is the fraction of samples one side must exceed to move the
// trend off stable.
const trendShare = 0.6

// Change describes a transition between the two newest samples.
type Change struct {
	From       Mood    `json:"from"`
	To         Mood    `json:"to"`
	Confidence float64 `json:"confidence"`
}

// History is a bounded FIFO of mood samples, oldest first. It is not
// goroutine safe; the owning session serializes access.
type History struct {
	samples []Sample
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{samples: make([]Sample, 0, HistorySize)}
}

// Append adds a sample, evicting the oldest at capacity.
func (h *History) Append(s Sample) {
	if len(h.samples) >= HistorySize {
		copy(h.samples, h.samples[1:])
		h.samples[len(h.samples)-1] = s
		return
	}
	h.samples = append(h.samples, s)
}

// Len returns the number of buffered samples.
func (h *History) Len() int {
	return len(h.samples)
}

// Recent returns up to n trailing samples, oldest first.
func (h *History) Recent(n int) []Sample {
	if n <= 0 || len(h.samples) == 0 {
		return nil
	}
	if n > len(h.samples) {
		n = len(h.samples)
	}
	out := make([]Sample, n)
	copy(out, h.samples[len(h.samples)-n:])
	return out
}

// Clear discards all buffered samples.
func (h *History) Clear() {
	h.samples = h.samples[:0]
}

// Dominant returns the most frequent mood within the trailing window and
// the average confidence of its samples. Ties go to whichever mood
// reached the winning count first in the oldest-to-newest scan, so the
// result is stable under insertion order. An empty window reports
// neutral with zero confidence. Both arguments are in milliseconds.
func (h *History) Dominant(now, window int64) (Mood, float64) {
	cutoff := now - window

	counts := make(map[Mood]int)
	sums := make(map[Mood]float64)
	best := MoodNeutral
	bestCount := 0

	for _, s := range h.samples {
		if s.Timestamp < cutoff {
			continue
		}
		counts[s.Mood]++
		sums[s.Mood] += s.Confidence
		if counts[s.Mood] > bestCount {
			best = s.Mood
			bestCount = counts[s.Mood]
		}
	}

	if bestCount == 0 {
		return MoodNeutral, 0
	}
	return best, sums[best] / float64(bestCount)
}

// LastChange reports whether the two newest samples disagree and the
// newer one is confident enough to count as a mood change.
func (h *History) LastChange(threshold float64) (Change, bool) {
	if len(h.samples) < 2 {
		return Change{}, false
	}
	prev := h.samples[len(h.samples)-2]
	last := h.samples[len(h.samples)-1]

	if last.Mood == prev.Mood || last.Confidence < threshold {
		return Change{}, false
	}
	return Change{
		From:       prev.Mood,
		To:         last.Mood,
		Confidence: last.Confidence,
	}, true
}

// TrendOf classifies the direction of the last n samples: improving when
// happy holds more than trendShare of them, declining when the negative
// moods do, stable otherwise.
func (h *History) TrendOf(n int) Trend {
	if n > len(h.samples) {
		n = len(h.samples)
	}
	if n <= 0 {
		return TrendStable
	}
	window := h.samples[len(h.samples)-n:]

	happy, negative := 0, 0
	for _, s := range window {
		switch {
		case s.Mood == MoodHappy:
			happy++
		case Negative(s.Mood):
			negative++
		}
	}

	total := float64(n)
	switch {
	case float64(happy) > trendShare*total:
		return TrendImproving
	case float64(negative) > trendShare*total:
		return TrendDeclining
	}
	return TrendStable
}
