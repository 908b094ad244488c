package options

// DefaultOptions holds the knobs recognized at engine construction time,
// per the defaults named in the spec.
var DefaultOptions = SymspellOptions{
	MaxDictionaryEditDistance: 2,
	PrefixLength:              7,
	CountThreshold:            1,
}

type SymspellOptions struct {
	MaxDictionaryEditDistance int
	PrefixLength              int
	CountThreshold            int
}

type Options interface {
	Apply(options *SymspellOptions)
}

type FuncConfig struct {
	ops func(options *SymspellOptions)
}

func (w FuncConfig) Apply(conf *SymspellOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SymspellOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// WithMaxDictionaryEditDistance sets the index depth and the hard upper
// bound on any lookup's requested max edit distance.
func WithMaxDictionaryEditDistance(maxDictionaryEditDistance int) Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.MaxDictionaryEditDistance = maxDictionaryEditDistance
	})
}

// WithPrefixLength sets how many leading characters of each term are used
// for delete-variant generation.
func WithPrefixLength(prefixLength int) Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.PrefixLength = prefixLength
	})
}

// WithCountThreshold sets the minimum count for a term to be considered a
// "real" dictionary entry.
func WithCountThreshold(countThreshold int) Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.CountThreshold = countThreshold
	})
}

// Resolve applies opts on top of DefaultOptions and returns the result.
func Resolve(opts ...Options) SymspellOptions {
	cfg := DefaultOptions
	for _, o := range opts {
		if o != nil {
			o.Apply(&cfg)
		}
	}
	return cfg
}
