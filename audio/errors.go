// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrFileOpen          = errors.New("error on opening file")
	ErrTruncatedData     = errors.New("invalid data length")
	ErrInvalidContainer  = errors.New("invalid data format")
	ErrUnsupportedFormat = errors.New("unsupported data format")

	// ErrEmptySource is returned by loaders when the input holds no samples.
	ErrEmptySource = fmt.Errorf("%w: no samples", ErrTruncatedData)

	ErrInvalidConfiguration = errors.New("invalid modulation configuration")
	ErrUnknownFormat        = errors.New("unknown audio format")
)

// FormatError reports which header field of a container failed validation.
// Err is one of the package sentinels, so errors.Is works on the result.
type FormatError struct {
	Container string
	Field     string
	Detail    string
	Err       error
}

func (e *FormatError) Error() string {
	msg := e.Container + ": " + e.Field + ": " + e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }
