package fakegen

import "errors"

var (
	// ErrExceededMaxTime indicates that the time budget of a Unique.Execute
	// call ran out before a value unseen in the scope was produced
	ErrExceededMaxTime = errors.New("fakegen: exceeded maxTime")

	// ErrExceededMaxRetries indicates that Unique.Execute drew maxRetries
	// consecutive values that were already seen in the scope
	ErrExceededMaxRetries = errors.New("fakegen: exceeded maxRetries")

	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("fakegen: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("fakegen: invalid UUID length (expected 16 bytes)")
)
