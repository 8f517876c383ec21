package order

import (
	"testing"

	"lessonstore/internal/controller/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() Payload {
	return Payload{
		Name:  "Jane Doe",
		Phone: "5551234",
		Items: []any{"book"},
		Total: 9.99,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("should normalize a valid payload", func(t *testing.T) {
		// given
		p := validPayload()
		p.Name = "  Jane Doe  "
		p.Phone = " 5551234 "

		// when
		o, err := Validate(p)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", o.Name)
		assert.Equal(t, "5551234", o.Phone)
		assert.Equal(t, []any{"book"}, o.Items)
		assert.Equal(t, 9.99, o.Total)
		assert.Empty(t, o.ID)
		assert.True(t, o.CreatedAt.IsZero())
	})

	t.Run("should coerce a numeric string total", func(t *testing.T) {
		p := validPayload()
		p.Total = "12.50"

		o, err := Validate(p)

		require.NoError(t, err)
		assert.Equal(t, 12.50, o.Total)
	})

	testCases := []struct {
		name          string
		mutate        func(p *Payload)
		expectedError error
	}{
		{
			name:          "should reject a name with digits",
			mutate:        func(p *Payload) { p.Name = "Jane99" },
			expectedError: apperror.ErrInvalidName,
		},
		{
			name:          "should reject a name with punctuation",
			mutate:        func(p *Payload) { p.Name = "Jane-Doe" },
			expectedError: apperror.ErrInvalidName,
		},
		{
			name:          "should reject an empty name",
			mutate:        func(p *Payload) { p.Name = "" },
			expectedError: apperror.ErrInvalidName,
		},
		{
			name:          "should reject a blank name",
			mutate:        func(p *Payload) { p.Name = "   " },
			expectedError: apperror.ErrInvalidName,
		},
		{
			name:          "should reject a phone with letters",
			mutate:        func(p *Payload) { p.Phone = "555abc" },
			expectedError: apperror.ErrInvalidPhone,
		},
		{
			name:          "should reject a phone with separators",
			mutate:        func(p *Payload) { p.Phone = "555-1234" },
			expectedError: apperror.ErrInvalidPhone,
		},
		{
			name:          "should reject an empty phone",
			mutate:        func(p *Payload) { p.Phone = "" },
			expectedError: apperror.ErrInvalidPhone,
		},
		{
			name:          "should reject empty items",
			mutate:        func(p *Payload) { p.Items = []any{} },
			expectedError: apperror.ErrEmptyItems,
		},
		{
			name:          "should reject missing items",
			mutate:        func(p *Payload) { p.Items = nil },
			expectedError: apperror.ErrEmptyItems,
		},
		{
			name:          "should reject a non-numeric total",
			mutate:        func(p *Payload) { p.Total = "nine dollars" },
			expectedError: apperror.ErrInvalidTotal,
		},
		{
			name:          "should reject a missing total",
			mutate:        func(p *Payload) { p.Total = nil },
			expectedError: apperror.ErrInvalidTotal,
		},
		{
			name:          "should reject a boolean total",
			mutate:        func(p *Payload) { p.Total = true },
			expectedError: apperror.ErrInvalidTotal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			p := validPayload()
			tc.mutate(&p)

			// when
			_, err := Validate(p)

			// then
			assert.ErrorIs(t, err, tc.expectedError)
		})
	}
}
