package overlay

import "errors"

var (
	ErrClosed        = errors.New("overlay is closed")
	ErrUnknownKind   = errors.New("unknown overlay kind")
	ErrUnknownAction = errors.New("unknown overlay action")
	ErrUnknownField  = errors.New("unknown overlay field")
	ErrInvalidInput  = errors.New("invalid overlay input")
)
