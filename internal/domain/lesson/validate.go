package lesson

import (
	"math"
	"strings"

	"lessonstore/internal/controller/apperror"
	"lessonstore/pkg/numeric"
)

// UpdatePayload is the raw PUT /api/lessons body. Spaces is deliberately
// untyped: clients send both JSON numbers and numeric strings.
type UpdatePayload struct {
	Subject string `json:"subject"`
	City    string `json:"city"`
	Spaces  any    `json:"spaces"`
}

// ValidateSpacesUpdate checks the payload shape and returns the normalized
// update. Pure function, no side effects.
func ValidateSpacesUpdate(p UpdatePayload) (SpacesUpdate, error) {
	subject := strings.TrimSpace(p.Subject)
	city := strings.TrimSpace(p.City)

	if subject == "" || city == "" || p.Spaces == nil {
		return SpacesUpdate{}, apperror.ErrMissingFields
	}

	f, ok := numeric.Finite(p.Spaces)
	if !ok || f < 0 || f != math.Trunc(f) {
		return SpacesUpdate{}, apperror.ErrInvalidSpaces
	}

	return SpacesUpdate{Subject: subject, City: city, Spaces: int(f)}, nil
}
