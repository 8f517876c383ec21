package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lessonstore/internal/controller/apperror"
	"lessonstore/internal/domain/order"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupOrderRouter(t *testing.T) (http.Handler, *order.MockOrderRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockRepo := order.NewMockOrderRepo(gomock.NewController(t))
	handler := NewOrderHandler(order.NewOrderService(mockRepo))

	engine := gin.New()
	engine.POST("/api/order", handler.Create)

	return engine, mockRepo
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestOrderHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("should place a valid order and return it with createdAt", func(t *testing.T) {
		// given
		handler, mockRepo := setupOrderRouter(t)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		// when
		rec := postJSON(t, handler, "/api/order", map[string]any{
			"name":  "Jane Doe",
			"phone": "5551234",
			"items": []string{"book"},
			"total": 9.99,
		})

		// then
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Message string      `json:"message"`
			Order   order.Order `json:"order"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Order placed", resp.Message)
		assert.Equal(t, "Jane Doe", resp.Order.Name)
		assert.NotEmpty(t, resp.Order.ID)
		assert.False(t, resp.Order.CreatedAt.IsZero())
	})

	t.Run("should return 500 with generic message when store is not connected", func(t *testing.T) {
		// given
		handler, mockRepo := setupOrderRouter(t)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(apperror.ErrStoreUnavailable)

		// when
		rec := postJSON(t, handler, "/api/order", map[string]any{
			"name":  "Jane Doe",
			"phone": "5551234",
			"items": []string{"book"},
			"total": 9.99,
		})

		// then
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
	})

	// Every rejection below must not touch the repository: no EXPECT is set,
	// so any Insert call fails the test.
	testCases := []struct {
		name            string
		body            map[string]any
		expectedMessage string
	}{
		{
			name: "should reject an invalid name",
			body: map[string]any{
				"name": "Jane99", "phone": "5551234", "items": []string{"book"}, "total": 9.99,
			},
			expectedMessage: "Invalid name format",
		},
		{
			name: "should reject an invalid phone",
			body: map[string]any{
				"name": "Jane Doe", "phone": "555-1234", "items": []string{"book"}, "total": 9.99,
			},
			expectedMessage: "Invalid phone format",
		},
		{
			name: "should reject empty items",
			body: map[string]any{
				"name": "Jane Doe", "phone": "5551234", "items": []string{}, "total": 9.99,
			},
			expectedMessage: "Items must be a non-empty list",
		},
		{
			name: "should reject a non-numeric total",
			body: map[string]any{
				"name": "Jane Doe", "phone": "5551234", "items": []string{"book"}, "total": "lots",
			},
			expectedMessage: "Invalid total",
		},
		{
			name: "should reject a malformed body",
			body: map[string]any{
				"name": "Jane Doe", "phone": "5551234", "items": "book", "total": 9.99,
			},
			expectedMessage: "Invalid request body",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			handler, _ := setupOrderRouter(t)

			// when
			rec := postJSON(t, handler, "/api/order", tc.body)

			// then
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedMessage, resp["message"])
		})
	}
}
