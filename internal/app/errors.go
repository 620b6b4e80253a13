package service

import "errors"

// ErrNotStarted is returned by read operations before Start succeeds.
var ErrNotStarted = errors.New("service not started")
