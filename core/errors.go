package core

import "github.com/pkg/errors"

type shutdown struct {
	message string
}

// NewShutdownError flags an unrecoverable condition (eg. a rejected upstream
// credential); the server drains and stops when it catches one.
func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
