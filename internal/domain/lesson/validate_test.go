package lesson

import (
	"testing"

	"lessonstore/internal/controller/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSpacesUpdate(t *testing.T) {
	t.Parallel()

	t.Run("should normalize a valid payload", func(t *testing.T) {
		// given
		p := UpdatePayload{Subject: " Math ", City: " Berlin ", Spaces: float64(3)}

		// when
		upd, err := ValidateSpacesUpdate(p)

		// then
		require.NoError(t, err)
		assert.Equal(t, SpacesUpdate{Subject: "Math", City: "Berlin", Spaces: 3}, upd)
	})

	t.Run("should coerce a numeric string spaces value", func(t *testing.T) {
		p := UpdatePayload{Subject: "Math", City: "Berlin", Spaces: "5"}

		upd, err := ValidateSpacesUpdate(p)

		require.NoError(t, err)
		assert.Equal(t, 5, upd.Spaces)
	})

	t.Run("should accept zero spaces", func(t *testing.T) {
		p := UpdatePayload{Subject: "Math", City: "Berlin", Spaces: float64(0)}

		upd, err := ValidateSpacesUpdate(p)

		require.NoError(t, err)
		assert.Equal(t, 0, upd.Spaces)
	})

	testCases := []struct {
		name          string
		payload       UpdatePayload
		expectedError error
	}{
		{
			name:          "should reject a missing subject",
			payload:       UpdatePayload{City: "Berlin", Spaces: float64(3)},
			expectedError: apperror.ErrMissingFields,
		},
		{
			name:          "should reject a blank city",
			payload:       UpdatePayload{Subject: "Math", City: "  ", Spaces: float64(3)},
			expectedError: apperror.ErrMissingFields,
		},
		{
			name:          "should reject missing spaces",
			payload:       UpdatePayload{Subject: "Math", City: "Berlin"},
			expectedError: apperror.ErrMissingFields,
		},
		{
			name:          "should reject negative spaces",
			payload:       UpdatePayload{Subject: "Math", City: "Berlin", Spaces: float64(-1)},
			expectedError: apperror.ErrInvalidSpaces,
		},
		{
			name:          "should reject fractional spaces",
			payload:       UpdatePayload{Subject: "Math", City: "Berlin", Spaces: 2.5},
			expectedError: apperror.ErrInvalidSpaces,
		},
		{
			name:          "should reject non-numeric spaces",
			payload:       UpdatePayload{Subject: "Math", City: "Berlin", Spaces: "many"},
			expectedError: apperror.ErrInvalidSpaces,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			_, err := ValidateSpacesUpdate(tc.payload)

			// then
			assert.ErrorIs(t, err, tc.expectedError)
		})
	}
}
