package booking

import "errors"

var (
	ErrConflict         = errors.New("overlapping leave request exists")
	ErrUnknownEmployee  = errors.New("unknown employee")
	ErrUnknownLeaveType = errors.New("unknown leave type")
	ErrNotFound         = errors.New("leave request not found")
	ErrInvalidState     = errors.New("leave request is not in a state allowing this change")
)
