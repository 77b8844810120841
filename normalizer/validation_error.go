package normalizer

import "errors"

// ValidationError represents input that was rejected by a normalizer with
// translation support. Message is the default English rendering; a front end
// that localizes output can resolve TranslationKey with TranslationValues
// instead.
type ValidationError struct {
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	if e.Message == "" {
		return "invalid value"
	}
	return e.Message
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var verr ValidationError
	return errors.As(err, &verr)
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if err == nil {
		return verr, false
	}
	ok := errors.As(err, &verr)
	return verr, ok
}
