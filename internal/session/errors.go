package session

import "errors"

// ErrStoreClosed is returned by a store used after Close.
var ErrStoreClosed = errors.New("session store closed")
