package utils

import "errors"

// Input errors. These surface to the user as an inline warning.
var (
	ErrInvalidRegion         = errors.New("invalid region selected")
	ErrNoInterestsSelected   = errors.New("select at least one interest")
	ErrInvalidInterest       = errors.New("invalid interest selected")
	ErrInvalidPartySize      = errors.New("party size must be between 1 and 10")
	ErrInvalidDuration       = errors.New("duration must be between 1 and 10 days")
	ErrInvalidSpecialRequest = errors.New("invalid special request selected")
	ErrInvalidPage           = errors.New("invalid page parameter")
	ErrInvalidPageSize       = errors.New("invalid page size parameter")
)

var (
	// ErrGeneration wraps whatever the text-generation service reported.
	ErrGeneration = errors.New("text generation failed")

	// ErrEmptyGeneration means the service answered without any candidate text.
	ErrEmptyGeneration = errors.New("text generation returned no content")

	// ErrLogWrite is never shown to the end user.
	ErrLogWrite = errors.New("execution log write failed")

	ErrDatabaseError = errors.New("database error")
)

// IsInputError reports whether err was caused by user input rather than a backend failure.
func IsInputError(err error) bool {
	for _, target := range []error{
		ErrInvalidRegion,
		ErrNoInterestsSelected,
		ErrInvalidInterest,
		ErrInvalidPartySize,
		ErrInvalidDuration,
		ErrInvalidSpecialRequest,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
