package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/mocks"
	"github.com/guttosm/spool-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilamentHandler_List(t *testing.T) {
	vendorID := primitive.NewObjectID()

	tests := []struct {
		name           string
		query          string
		setup          func(m *mocks.MockFilamentService)
		expectedStatus int
	}{
		{
			name:  "filters by vendor and material",
			query: "?vendor_id=" + vendorID.Hex() + "&material=%20PLA%20",
			setup: func(m *mocks.MockFilamentService) {
				m.On("List", mock.Anything, model.FilamentQuery{
					VendorID: &vendorID,
					Material: "PLA",
					Limit:    100,
				}).Return([]model.Filament{{Material: "PLA"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed vendor id",
			query:          "?vendor_id=xyz",
			setup:          func(*mocks.MockFilamentService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockFilamentService{}
			tt.setup(svc)
			router := testRouter(RouterConfig{FilamentService: svc})

			w := perform(router, http.MethodGet, "/api/filaments"+tt.query, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestFilamentHandler_Create(t *testing.T) {
	vendorID := primitive.NewObjectID()

	tests := []struct {
		name            string
		body            string
		setup           func(m *mocks.MockFilamentService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "created",
			body: `{"name": "Galaxy Black", "material": "PLA", "color_hex": "#1a1a1a", "weight": 1000}`,
			setup: func(m *mocks.MockFilamentService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(req dto.CreateFilamentRequest) bool {
					return req.ColorHex == "#1a1a1a" && model.ValueOrZero(req.Weight) == 1000
				})).Return(&model.Filament{ID: primitive.NewObjectID(), ColorHex: "1A1A1A"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:            "negative weight",
			body:            `{"weight": -1}`,
			setup:           func(*mocks.MockFilamentService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "weight: must not be negative",
		},
		{
			name: "unknown vendor",
			body: `{"vendor_id": "` + vendorID.Hex() + `"}`,
			setup: func(m *mocks.MockFilamentService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, &service.NotFoundError{Resource: "vendor", ID: vendorID.Hex()})
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Vendor not found",
		},
		{
			name: "malformed vendor id",
			body: `{"vendor_id": "abc"}`,
			setup: func(m *mocks.MockFilamentService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("vendor_id %q: %w", "abc", service.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockFilamentService{}
			tt.setup(svc)
			router := testRouter(RouterConfig{FilamentService: svc})

			w := perform(router, http.MethodPost, "/api/filaments", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestFilamentHandler_Delete_InUse(t *testing.T) {
	id := primitive.NewObjectID()
	svc := &mocks.MockFilamentService{}
	svc.On("Delete", mock.Anything, id).Return(fmt.Errorf("filament is referenced: %w", service.ErrConflict))
	router := testRouter(RouterConfig{FilamentService: svc})

	w := perform(router, http.MethodDelete, "/api/filaments/"+id.Hex(), "", "Accept-Language", "pt-BR")

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeConflict, resp.Error)
	assert.Equal(t, "Filamento ainda é usado por carretéis", resp.Message)
	svc.AssertExpectations(t)
}
