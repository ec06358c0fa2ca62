//go:build contract

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	spoolID := primitive.NewObjectID()

	summary := &mocks.MockSummaryService{}
	summary.On("Summary", mock.Anything).Return(model.FilamentSummary{
		TotalSpools:          1,
		TotalRemainingWeight: 400,
		Groups: []model.FilamentGroup{{
			Key:                  `"PLA"::solid:"FF0000"`,
			Material:             "PLA",
			ColorHex:             "FF0000",
			SpoolCount:           1,
			TotalRemainingWeight: 400,
			TotalFilamentWeight:  1000,
		}},
	}, nil)

	spools := &mocks.MockSpoolService{}
	spools.On("Use", mock.Anything, spoolID, 100.0).Return(&model.Spool{
		ID:              spoolID,
		FilamentID:      primitive.NewObjectID(),
		RemainingWeight: model.Float(400),
	}, nil)

	router := testRouter(RouterConfig{SummaryService: summary, SpoolService: spools})

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "GET /api/summary - Success 200",
			method:         http.MethodGet,
			path:           "/api/summary",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
				assert.NotZero(t, resp.Timestamp, "Response must include timestamp")

				data, ok := resp.Data.(map[string]interface{})
				require.True(t, ok)
				for _, field := range []string{"active_spools", "total_remaining_weight", "total_remaining_kg", "group_count", "groups", "footer"} {
					assert.Contains(t, data, field)
				}

				groups, ok := data["groups"].([]interface{})
				require.True(t, ok)
				require.Len(t, groups, 1)
				group, ok := groups[0].(map[string]interface{})
				require.True(t, ok)
				for _, field := range []string{"key", "material", "spool_count", "total_remaining_weight", "total_filament_weight", "color_label", "swatch", "display_name", "remaining_percent"} {
					assert.Contains(t, group, field)
				}
				assert.Equal(t, 40.0, group["remaining_percent"])
			},
		},
		{
			name:           "POST /api/spools/{id}/use - Success 200",
			method:         http.MethodPost,
			path:           "/api/spools/" + spoolID.Hex() + "/use",
			body:           `{"use_weight": 100}`,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data, ok := resp.Data.(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, spoolID.Hex(), data["id"])
				assert.Equal(t, 400.0, data["remaining_weight"])
				assert.Contains(t, data, "archived")
			},
		},
		{
			name:           "POST /api/spools/{id}/use - Error 400",
			method:         http.MethodPost,
			path:           "/api/spools/" + spoolID.Hex() + "/use",
			body:           `{"use_weight": -3}`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "GET /readyz - Success 200",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "ok", resp["status"])
				assert.Contains(t, resp, "checks")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Response must include X-Request-ID header")
			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}
