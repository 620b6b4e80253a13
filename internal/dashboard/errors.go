package dashboard

import "errors"

// Sentinel kinds for view errors.
var (
	ErrIndexOutOfRange = errors.New("team index out of range")
	ErrEmptyDataset    = errors.New("dashboard needs at least one team")
)
