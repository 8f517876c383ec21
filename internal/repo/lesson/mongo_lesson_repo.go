package lesson_repo

import (
	"context"
	"fmt"

	"lessonstore/internal/controller/apperror"
	"lessonstore/internal/domain/lesson"
	"lessonstore/pkg/mongodb"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "lessons"

// MongoLessonRepo is the MongoDB-backed lesson repository.
type MongoLessonRepo struct {
	store *mongodb.Store
}

func NewMongoLessonRepo(store *mongodb.Store) lesson.LessonRepo {
	return &MongoLessonRepo{store: store}
}

func (r *MongoLessonRepo) collection() *mongo.Collection {
	return r.store.Collection(collectionName)
}

func (r *MongoLessonRepo) All(ctx context.Context) ([]lesson.Lesson, error) {
	if !r.store.Ready() {
		return nil, apperror.ErrStoreUnavailable
	}

	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find lessons: %w", err)
	}

	var docs []lessonDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode lessons: %w", err)
	}

	lessons := make([]lesson.Lesson, 0, len(docs))
	for _, d := range docs {
		lessons = append(lessons, d.toDomain())
	}
	return lessons, nil
}

func (r *MongoLessonRepo) SetSpaces(ctx context.Context, subject, city string, spaces int) (int64, error) {
	if !r.store.Ready() {
		return 0, apperror.ErrStoreUnavailable
	}

	filter := bson.M{"subject": subject, "locations.city": city}
	update := bson.M{"$set": bson.M{"locations.$.spaces": spaces}}

	res, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("update lesson spaces: %w", err)
	}

	// MatchedCount, not ModifiedCount: re-applying the same value is a
	// success with zero modifications.
	return res.MatchedCount, nil
}
