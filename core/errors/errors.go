package errors

import "errors"

type Category string

const (
	CategoryInvalidOptions   Category = "invalid_option_combination"
	CategoryUnparseable      Category = "unparseable_descriptor"
	CategoryUnknownPreset    Category = "unrecognized_preset"
	CategoryIncompleteSample Category = "incomplete_legacy_sample"
	CategoryIOFailure        Category = "io_failure"
	CategoryInternalFailure  Category = "internal_failure"
)

type classifiedError struct {
	category Category
	code     string
	hint     string
	cause    error
}

func (e *classifiedError) Error() string {
	if e.cause == nil {
		return "unknown error"
	}
	return e.cause.Error()
}

func (e *classifiedError) Unwrap() error {
	return e.cause
}

// Wrap attaches a category, a stable machine code and a user hint to cause.
// Resolution failures are deterministic parse/validation failures, so no
// retryable flag exists at this layer.
func Wrap(cause error, category Category, code, hint string) error {
	if cause == nil {
		return nil
	}
	return &classifiedError{
		category: category,
		code:     code,
		hint:     hint,
		cause:    cause,
	}
}

func CategoryOf(err error) Category {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.category
	}
	return ""
}

func CodeOf(err error) string {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.code
	}
	return ""
}

func HintOf(err error) string {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.hint
	}
	return ""
}
