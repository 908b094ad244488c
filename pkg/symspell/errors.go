package symspell

import "errors"

// ErrInvalidArgument is returned when a caller passes a value the engine
// cannot act on: a requested max edit distance greater than the index's
// MaxDictionaryEditDistance, or a negative dictionary count.
var ErrInvalidArgument = errors.New("symspell: invalid argument")
