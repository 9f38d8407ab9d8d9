package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTimestamp matches any TimestampError via errors.Is.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrEmptyTranscript marks a transcript without a single timestamp header.
	// Parse itself never returns it; callers use it to report "no analyzable data".
	ErrEmptyTranscript = errors.New("no messages found in transcript")
)

// TimestampError is returned when a header matched the timestamp pattern but
// does not name a real date and time. It aborts the whole transcript.
type TimestampError struct {
	Header string
	Offset int
	Reason string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp %q at offset %d: %s", e.Header, e.Offset, e.Reason)
}

func (e *TimestampError) Is(target error) bool {
	return target == ErrMalformedTimestamp
}
