package fieldwalk

import "github.com/viant/fieldwalk/layout"

type (
	options struct {
		rules    layout.Rules
		nested   bool
		recorder *Recorder
	}

	//Option represents walk option
	Option func(o *options)

	//Options represents walk options
	Options []Option
)

// Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

func newOptions(opts []Option) *options {
	ret := &options{rules: layout.GoRules, recorder: defaultRecorder}
	Options(opts).Apply(ret)
	if ret.recorder == nil {
		ret.recorder = defaultRecorder
	}
	return ret
}

// WithRules returns option with layout rules used for size validation
func WithRules(rules layout.Rules) Option {
	return func(o *options) {
		o.rules = rules
	}
}

// WithNested returns option controlling whether struct fields are visited field by field (true)
// or as one opaque field (false, default)
func WithNested(flag bool) Option {
	return func(o *options) {
		o.nested = flag
	}
}

// WithRecorder returns option with a slot recorder, discovery results are isolated per recorder
func WithRecorder(recorder *Recorder) Option {
	return func(o *options) {
		o.recorder = recorder
	}
}
