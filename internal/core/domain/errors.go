package domain

import "errors"

// ErrInsufficientPoints is returned when a request resolves to fewer than two
// total route points. The message is stable and safe to show to callers.
var ErrInsufficientPoints = errors.New("route requires at least two points")
