package lesson

import (
	"context"
	"fmt"

	"lessonstore/internal/controller/apperror"
)

type LessonService struct {
	lessonRepo LessonRepo
}

func NewLessonService(lessonRepo LessonRepo) *LessonService {
	return &LessonService{lessonRepo: lessonRepo}
}

// List returns every lesson, unfiltered and unsorted.
func (s *LessonService) List(ctx context.Context) ([]Lesson, error) {
	lessons, err := s.lessonRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

// UpdateSpaces applies a blind overwrite of the spaces counter for the
// matching (subject, city) pair. Re-applying the same update succeeds with
// the same final state; concurrent updates to the same pair are
// last-write-wins, delegated to the store.
func (s *LessonService) UpdateSpaces(ctx context.Context, upd SpacesUpdate) error {
	matched, err := s.lessonRepo.SetSpaces(ctx, upd.Subject, upd.City, upd.Spaces)
	if err != nil {
		return fmt.Errorf("update spaces: %w", err)
	}
	if matched == 0 {
		return apperror.ErrLessonNotFound
	}
	return nil
}
