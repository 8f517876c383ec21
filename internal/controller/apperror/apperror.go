package apperror

import "errors"

// Validation errors carry the exact message returned to the client.
var ErrInvalidName = errors.New("Invalid name format")
var ErrInvalidPhone = errors.New("Invalid phone format")
var ErrEmptyItems = errors.New("Items must be a non-empty list")
var ErrInvalidTotal = errors.New("Invalid total")
var ErrMissingFields = errors.New("Missing subject, city or spaces")
var ErrInvalidSpaces = errors.New("Invalid spaces value")

var ErrLessonNotFound = errors.New("lesson not found")
var ErrStoreUnavailable = errors.New("store not connected")
