package codec

import "fmt"

// DecodeError reports where a wire payload stopped making sense.
type DecodeError struct {
	Offset int    `json:"offset"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("decode error(offset=%d reason=%s): %v", e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode error(offset=%d reason=%s)", e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
