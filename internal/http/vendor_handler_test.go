package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/guttosm/spool-service/internal/circuitbreaker"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/mocks"
	"github.com/guttosm/spool-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestVendorHandler_List(t *testing.T) {
	vendors := []model.Vendor{{ID: primitive.NewObjectID(), Name: "Prusament"}}

	tests := []struct {
		name           string
		query          string
		setup          func(m *mocks.MockVendorService)
		expectedStatus int
	}{
		{
			name:  "default page",
			query: "",
			setup: func(m *mocks.MockVendorService) {
				m.On("List", mock.Anything, 100, 0).Return(vendors, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "limit is clamped",
			query: "?limit=5000&offset=10",
			setup: func(m *mocks.MockVendorService) {
				m.On("List", mock.Anything, 1000, 10).Return(vendors, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed limit",
			query:          "?limit=ten",
			setup:          func(*mocks.MockVendorService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative offset",
			query:          "?offset=-1",
			setup:          func(*mocks.MockVendorService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "circuit open",
			query: "",
			setup: func(m *mocks.MockVendorService) {
				m.On("List", mock.Anything, 100, 0).Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockVendorService{}
			tt.setup(svc)
			router := testRouter(RouterConfig{VendorService: svc})

			w := perform(router, http.MethodGet, "/api/vendors"+tt.query, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []model.Vendor
				decodeData(t, w, &got)
				assert.Len(t, got, 1)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestVendorHandler_Get(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name            string
		path            string
		setup           func(m *mocks.MockVendorService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "found",
			path: "/api/vendors/" + id.Hex(),
			setup: func(m *mocks.MockVendorService) {
				m.On("Get", mock.Anything, id).Return(&model.Vendor{ID: id, Name: "Prusament"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed id",
			path:           "/api/vendors/not-an-id",
			setup:          func(*mocks.MockVendorService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing vendor",
			path: "/api/vendors/" + id.Hex(),
			setup: func(m *mocks.MockVendorService) {
				m.On("Get", mock.Anything, id).Return(nil, &service.NotFoundError{Resource: "vendor", ID: id.Hex()})
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Vendor not found",
		},
		{
			name: "unexpected failure",
			path: "/api/vendors/" + id.Hex(),
			setup: func(m *mocks.MockVendorService) {
				m.On("Get", mock.Anything, id).Return(nil, errors.New("socket closed"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockVendorService{}
			tt.setup(svc)
			router := testRouter(RouterConfig{VendorService: svc})

			w := perform(router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestVendorHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(m *mocks.MockVendorService)
		expectedStatus int
		expectedAudit  []string
		expectedDetail map[string]string
	}{
		{
			name: "created",
			body: `{"name": "Prusament"}`,
			setup: func(m *mocks.MockVendorService) {
				m.On("Create", mock.Anything, dto.CreateVendorRequest{Name: "Prusament"}).
					Return(&model.Vendor{ID: primitive.NewObjectID(), Name: "Prusament"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedAudit:  []string{"create_vendor:info"},
		},
		{
			name:           "blank name",
			body:           `{"name": "  "}`,
			setup:          func(*mocks.MockVendorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: map[string]string{"name": "is required"},
		},
		{
			name:           "malformed body",
			body:           `{"name": `,
			setup:          func(*mocks.MockVendorService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockVendorService{}
			tt.setup(svc)
			sink := &auditRecorder{}
			router := testRouter(RouterConfig{VendorService: svc, AuditSink: sink})

			w := perform(router, http.MethodPost, "/api/vendors", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedAudit, sink.actions())
			if tt.expectedDetail != nil {
				assert.Equal(t, tt.expectedDetail, decodeError(t, w).Details)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestVendorHandler_Update(t *testing.T) {
	id := primitive.NewObjectID()
	name := "Prusa Research"

	svc := &mocks.MockVendorService{}
	svc.On("Update", mock.Anything, id, dto.UpdateVendorRequest{Name: &name}).
		Return(&model.Vendor{ID: id, Name: name}, nil)
	router := testRouter(RouterConfig{VendorService: svc})

	w := perform(router, http.MethodPatch, "/api/vendors/"+id.Hex(), `{"name": "Prusa Research"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Vendor
	decodeData(t, w, &got)
	assert.Equal(t, name, got.Name)

	w = perform(router, http.MethodPatch, "/api/vendors/"+id.Hex(), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
}

func TestVendorHandler_Delete(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
		expectedAudit   []string
	}{
		{
			name:           "deleted",
			expectedStatus: http.StatusNoContent,
			expectedAudit:  []string{"delete_vendor:info"},
		},
		{
			name:            "still referenced",
			err:             fmt.Errorf("vendor is referenced by 2 filament(s): %w", service.ErrConflict),
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Vendor is still used by filaments",
			expectedAudit:   []string{"delete_vendor:error"},
		},
		{
			name:            "missing",
			err:             &service.NotFoundError{Resource: "vendor", ID: id.Hex()},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Vendor not found",
			expectedAudit:   []string{"delete_vendor:error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockVendorService{}
			svc.On("Delete", mock.Anything, id).Return(tt.err)
			sink := &auditRecorder{}
			router := testRouter(RouterConfig{VendorService: svc, AuditSink: sink})

			w := perform(router, http.MethodDelete, "/api/vendors/"+id.Hex(), "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
			}
			assert.Equal(t, tt.expectedAudit, sink.actions())
			svc.AssertExpectations(t)
		})
	}
}
