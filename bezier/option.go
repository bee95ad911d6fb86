package bezier

type Options struct {
	division  int
	step      float64
	divisions *DivisionCache
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		division: DefaultDivision,
		step:     DefaultStep,
	}

	for _, o := range option {
		o(opts)
	}

	if opts.divisions != nil {
		opts.division = opts.divisions.Division()
	}

	return opts
}

func DivisionOption(division int) Option {
	return func(o *Options) {
		o.division = division
	}
}

func StepOption(step float64) Option {
	return func(o *Options) {
		o.step = step
	}
}

// DivisionCacheOption shares an existing cache between sessions. Its
// division overrides DivisionOption.
func DivisionCacheOption(divisions *DivisionCache) Option {
	return func(o *Options) {
		o.divisions = divisions
	}
}
