package lesson_repo

import (
	"lessonstore/internal/domain/lesson"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type locationDoc struct {
	City   string `bson:"city"`
	Spaces int    `bson:"spaces"`
}

type lessonDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Subject   string        `bson:"subject"`
	Locations []locationDoc `bson:"locations"`
}

func (d lessonDoc) toDomain() lesson.Lesson {
	locations := make([]lesson.Location, 0, len(d.Locations))
	for _, l := range d.Locations {
		locations = append(locations, lesson.Location{City: l.City, Spaces: l.Spaces})
	}
	return lesson.Lesson{
		ID:        d.ID.Hex(),
		Subject:   d.Subject,
		Locations: locations,
	}
}
