package suggest

import "errors"

var (
	// ErrInvalidURL means the candidate domain is empty or has no dot
	// after sanitization.
	ErrInvalidURL = errors.New("invalid domain")
	// ErrDuplicateDomain means an equivalent domain is already in the
	// custom list.
	ErrDuplicateDomain = errors.New("domain already exists")
	// ErrIndexOutOfRange means the supplied list index is out of bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)
