package redisearch

import "fmt"

// DecodeError reports a reply whose shape does not match the positional
// layout the decoder expects. The message names the offending element or
// arity so a mismatch can be diagnosed from logs alone.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "decode search reply: " + e.Reason
}

func decodeErrorf(format string, args ...any) error {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}
