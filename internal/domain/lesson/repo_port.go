package lesson

import "context"

// LessonRepo is the storage port for lessons.
type LessonRepo interface {
	// All returns every lesson document in the store's natural order.
	All(ctx context.Context) ([]Lesson, error)
	// SetSpaces overwrites the spaces field of the location matching
	// (subject, city) and reports how many lessons matched.
	SetSpaces(ctx context.Context, subject, city string, spaces int) (int64, error)
}
