package lesson

// Location is one city where a lesson is offered, with its remaining capacity.
type Location struct {
	City   string `json:"city"`
	Spaces int    `json:"spaces"`
}

// Lesson is a subject offered at one or more city locations.
// Lessons are seeded outside this service; only a location's spaces field is
// ever mutated here, and city values are unique within one lesson.
type Lesson struct {
	ID        string     `json:"id"`
	Subject   string     `json:"subject"`
	Locations []Location `json:"locations"`
}

// SpacesUpdate is a validated, normalized spaces assignment for one
// (subject, city) pair. The value is an absolute overwrite, not a decrement.
type SpacesUpdate struct {
	Subject string `json:"subject"`
	City    string `json:"city"`
	Spaces  int    `json:"spaces"`
}
