package order

import (
	"regexp"
	"strings"

	"lessonstore/internal/controller/apperror"
	"lessonstore/pkg/numeric"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z ]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]+$`)
)

// Payload is the raw POST /api/order body. Total is deliberately untyped:
// clients send both JSON numbers and numeric strings.
type Payload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Items []any  `json:"items"`
	Total any    `json:"total"`
}

// Validate checks the payload and returns a normalized Order with name and
// phone trimmed and total coerced to a float. ID and CreatedAt are left for
// the service to assign. Pure function, no side effects.
func Validate(p Payload) (Order, error) {
	name := strings.TrimSpace(p.Name)
	if !nameRe.MatchString(name) {
		return Order{}, apperror.ErrInvalidName
	}

	phone := strings.TrimSpace(p.Phone)
	if !phoneRe.MatchString(phone) {
		return Order{}, apperror.ErrInvalidPhone
	}

	if len(p.Items) == 0 {
		return Order{}, apperror.ErrEmptyItems
	}

	total, ok := numeric.Finite(p.Total)
	if !ok {
		return Order{}, apperror.ErrInvalidTotal
	}

	return Order{
		Name:  name,
		Phone: phone,
		Items: p.Items,
		Total: total,
	}, nil
}
