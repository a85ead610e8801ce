package gesture

// SwipeWindow is the number of trailing history entries a motion check
// runs over.
const SwipeWindow = 5

// MotionConfig holds the thresholds of the dynamic gesture detector.
type MotionConfig struct {
	// MinTravel is the total normalized displacement a monotonic wrist
	// path must cover to count as a swipe.
	MinTravel float64
	// Deadband is the per-step horizontal movement below which a step
	// counts as stationary for wave detection.
	Deadband float64
	// MinReversals is the number of horizontal direction reversals a
	// path needs to count as a wave.
	MinReversals int
}

// DefaultMotionConfig returns the calibrated motion thresholds.
func DefaultMotionConfig() MotionConfig {
	return MotionConfig{
		MinTravel:    0.3,
		Deadband:     0.02,
		MinReversals: 2,
	}
}

// MotionDetector recognizes swipes and waves from the wrist path of the
// trailing event window. Swipes are checked first, in the fixed priority
// right, left, up, down; a path that is both monotonic enough to swipe
// and jittery enough to wave reports the swipe.
type MotionDetector struct {
	cfg MotionConfig
}

// NewMotionDetector creates a MotionDetector with the given thresholds.
func NewMotionDetector(cfg MotionConfig) *MotionDetector {
	return &MotionDetector{cfg: cfg}
}

// Detect inspects the last SwipeWindow events and reports the motion
// label their wrist path completes, if any. Fewer than SwipeWindow
// events never match.
func (d *MotionDetector) Detect(events []*Event) (Label, bool) {
	if len(events) < SwipeWindow {
		return "", false
	}
	window := events[len(events)-SwipeWindow:]

	xs := make([]float64, SwipeWindow)
	ys := make([]float64, SwipeWindow)
	for i, e := range window {
		w := e.Frame.Wrist()
		xs[i] = w.X
		ys[i] = w.Y
	}

	last := SwipeWindow - 1
	switch {
	case strictlyIncreasing(xs) && xs[last]-xs[0] > d.cfg.MinTravel:
		return LabelSwipeRight, true
	case strictlyDecreasing(xs) && xs[0]-xs[last] > d.cfg.MinTravel:
		return LabelSwipeLeft, true
	case strictlyDecreasing(ys) && ys[0]-ys[last] > d.cfg.MinTravel:
		// Y decreases going up in image coordinates
		return LabelSwipeUp, true
	case strictlyIncreasing(ys) && ys[last]-ys[0] > d.cfg.MinTravel:
		return LabelSwipeDown, true
	}

	if d.reversals(xs) >= d.cfg.MinReversals {
		return LabelWave, true
	}
	return "", false
}

// reversals counts horizontal direction changes along the path, ignoring
// steps inside the deadband.
func (d *MotionDetector) reversals(xs []float64) int {
	count := 0
	prev := 0
	for i := 1; i < len(xs); i++ {
		dx := xs[i] - xs[i-1]
		dir := 0
		switch {
		case dx > d.cfg.Deadband:
			dir = 1
		case dx < -d.cfg.Deadband:
			dir = -1
		}
		if dir == 0 {
			continue
		}
		if prev != 0 && dir != prev {
			count++
		}
		prev = dir
	}
	return count
}

func strictlyIncreasing(vals []float64) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			return false
		}
	}
	return true
}

func strictlyDecreasing(vals []float64) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] >= vals[i-1] {
			return false
		}
	}
	return true
}
