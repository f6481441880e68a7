package domain

import "errors"

// Closed set of failure kinds crossing stage boundaries. Callers match with
// errors.Is to decide continue-vs-abort: feed errors skip one bank, parse and
// validation errors drop one row or abort one file, connectivity errors abort
// the stage.
var (
	ErrFeed         = errors.New("feed error")
	ErrParse        = errors.New("parse error")
	ErrConnectivity = errors.New("connectivity error")
	ErrValidation   = errors.New("validation error")
)
