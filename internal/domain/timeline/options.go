package timeline

// Options tunes the axis geometry. Values are in axis percent except
// StackStep, which is in display units.
type Options struct {
	// AxisMinutes is the minute mapped to the right end of the playable axis.
	AxisMinutes int `yaml:"axis_minutes"`
	// AxisScale shrinks the playable axis so late events stay clear of the
	// full time label.
	AxisScale  float64 `yaml:"axis_scale"`
	MaxPercent float64 `yaml:"max_percent"`
	// MinSpacing is the separation required between minute groups that are
	// ProximityWindow or more minutes apart. Closer groups need
	// ProximityWindow - |dt|.
	MinSpacing      float64 `yaml:"min_spacing"`
	ProximityWindow float64 `yaml:"proximity_window"`
	StackStep       int     `yaml:"stack_step"`
	KickoffPercent  float64 `yaml:"kickoff_percent"`
	FullTimePercent float64 `yaml:"full_time_percent"`
	KickoffLabel    string  `yaml:"kickoff_label"`
	FullTimeLabel   string  `yaml:"full_time_label"`
}

func DefaultOptions() Options {
	return Options{
		AxisMinutes:     90,
		AxisScale:       0.95,
		MaxPercent:      95,
		MinSpacing:      2.5,
		ProximityWindow: 6,
		StackStep:       20,
		KickoffPercent:  2,
		FullTimePercent: 98,
		KickoffLabel:    "KO",
		FullTimeLabel:   "FT",
	}
}

// Normalize replaces unusable values with their defaults.
func (o Options) Normalize() Options {
	defaults := DefaultOptions()
	if o.AxisMinutes <= 0 {
		o.AxisMinutes = defaults.AxisMinutes
	}
	if o.AxisScale <= 0 || o.AxisScale > 1 {
		o.AxisScale = defaults.AxisScale
	}
	if o.MaxPercent <= 0 || o.MaxPercent > 100 {
		o.MaxPercent = defaults.MaxPercent
	}
	if o.MinSpacing <= 0 {
		o.MinSpacing = defaults.MinSpacing
	}
	if o.ProximityWindow < 0 {
		o.ProximityWindow = defaults.ProximityWindow
	}
	if o.StackStep <= 0 {
		o.StackStep = defaults.StackStep
	}
	if o.KickoffPercent < 0 || o.KickoffPercent > 100 {
		o.KickoffPercent = defaults.KickoffPercent
	}
	if o.FullTimePercent <= 0 || o.FullTimePercent > 100 {
		o.FullTimePercent = defaults.FullTimePercent
	}
	if o.KickoffLabel == "" {
		o.KickoffLabel = defaults.KickoffLabel
	}
	if o.FullTimeLabel == "" {
		o.FullTimeLabel = defaults.FullTimeLabel
	}
	return o
}
