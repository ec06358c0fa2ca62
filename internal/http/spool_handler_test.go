package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/middleware"
	"github.com/guttosm/spool-service/internal/mocks"
	"github.com/guttosm/spool-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSpoolHandler_List(t *testing.T) {
	filamentID := primitive.NewObjectID()

	tests := []struct {
		name           string
		query          string
		setup          func(m *mocks.MockSpoolService)
		expectedStatus int
	}{
		{
			name:  "active spools by default",
			query: "",
			setup: func(m *mocks.MockSpoolService) {
				m.On("List", mock.Anything, model.SpoolQuery{Limit: 100}).Return([]model.Spool{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "archived and filament filter",
			query: "?allow_archived=true&filament_id=" + filamentID.Hex() + "&limit=5&offset=5",
			setup: func(m *mocks.MockSpoolService) {
				m.On("List", mock.Anything, model.SpoolQuery{
					FilamentID:      &filamentID,
					IncludeArchived: true,
					Limit:           5,
					Skip:            5,
				}).Return([]model.Spool{{FilamentID: filamentID, Archived: true}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed flag",
			query:          "?allow_archived=maybe",
			setup:          func(*mocks.MockSpoolService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed filament id",
			query:          "?filament_id=42",
			setup:          func(*mocks.MockSpoolService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockSpoolService{}
			tt.setup(svc)
			router := testRouter(RouterConfig{SpoolService: svc})

			w := perform(router, http.MethodGet, "/api/spools"+tt.query, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestSpoolHandler_Create(t *testing.T) {
	filamentID := primitive.NewObjectID()

	tests := []struct {
		name            string
		body            string
		setup           func(m *mocks.MockSpoolService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "created with default weight",
			body: `{"filament_id": "` + filamentID.Hex() + `"}`,
			setup: func(m *mocks.MockSpoolService) {
				m.On("Create", mock.Anything, dto.CreateSpoolRequest{FilamentID: filamentID.Hex()}).
					Return(&model.Spool{ID: primitive.NewObjectID(), FilamentID: filamentID, RemainingWeight: model.Float(1000)}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:            "missing filament id",
			body:            `{"location": "Shelf A"}`,
			setup:           func(*mocks.MockSpoolService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "filament_id: is required",
		},
		{
			name: "unknown filament",
			body: `{"filament_id": "` + filamentID.Hex() + `"}`,
			setup: func(m *mocks.MockSpoolService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, &service.NotFoundError{Resource: "filament", ID: filamentID.Hex()})
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Filament not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockSpoolService{}
			tt.setup(svc)
			router := testRouter(RouterConfig{SpoolService: svc})

			w := perform(router, http.MethodPost, "/api/spools", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestSpoolHandler_Update_AuditsArchive(t *testing.T) {
	id := primitive.NewObjectID()
	archived := true

	svc := &mocks.MockSpoolService{}
	svc.On("Update", mock.Anything, id, dto.UpdateSpoolRequest{Archived: &archived}).
		Return(&model.Spool{ID: id, Archived: true}, nil)
	sink := &auditRecorder{}
	router := testRouter(RouterConfig{SpoolService: svc, AuditSink: sink})

	w := perform(router, http.MethodPatch, "/api/spools/"+id.Hex(), `{"archived": true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"archive_spool:info"}, sink.actions())
	svc.AssertExpectations(t)
}

func TestSpoolHandler_Use(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name            string
		body            string
		setup           func(m *mocks.MockSpoolService)
		expectedStatus  int
		expectedMessage string
		expectedAudit   []string
	}{
		{
			name: "consumes filament",
			body: `{"use_weight": 12.5}`,
			setup: func(m *mocks.MockSpoolService) {
				m.On("Use", mock.Anything, id, 12.5).
					Return(&model.Spool{ID: id, RemainingWeight: model.Float(737.5)}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedAudit:  []string{"use_spool:info"},
		},
		{
			name:            "zero weight",
			body:            `{"use_weight": 0}`,
			setup:           func(*mocks.MockSpoolService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "use_weight: must be a positive number",
		},
		{
			name:            "missing weight",
			body:            `{}`,
			setup:           func(*mocks.MockSpoolService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "use_weight: must be a positive number",
		},
		{
			name: "archived spool",
			body: `{"use_weight": 5}`,
			setup: func(m *mocks.MockSpoolService) {
				m.On("Use", mock.Anything, id, 5.0).
					Return(nil, fmt.Errorf("spool is archived: %w", service.ErrConflict))
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Spool is archived",
			expectedAudit:   []string{"use_spool:error"},
		},
		{
			name: "missing spool",
			body: `{"use_weight": 5}`,
			setup: func(m *mocks.MockSpoolService) {
				m.On("Use", mock.Anything, id, 5.0).
					Return(nil, &service.NotFoundError{Resource: "spool", ID: id.Hex()})
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Spool not found",
			expectedAudit:   []string{"use_spool:error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockSpoolService{}
			tt.setup(svc)
			sink := &auditRecorder{}
			router := testRouter(RouterConfig{SpoolService: svc, AuditSink: sink})

			w := perform(router, http.MethodPost, "/api/spools/"+id.Hex()+"/use", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
			}
			assert.Equal(t, tt.expectedAudit, sink.actions())
			svc.AssertExpectations(t)
		})
	}
}

func TestSpoolHandler_Use_RetryIsReplayed(t *testing.T) {
	id := primitive.NewObjectID()

	svc := &mocks.MockSpoolService{}
	svc.On("Use", mock.Anything, id, 10.0).
		Return(&model.Spool{ID: id, RemainingWeight: model.Float(90)}, nil).Once()

	idem := middleware.DefaultIdempotencyConfig()
	defer idem.Cache.Stop()
	router := testRouter(RouterConfig{SpoolService: svc, Idempotency: &idem})

	path := "/api/spools/" + id.Hex() + "/use"
	first := perform(router, http.MethodPost, path, `{"use_weight": 10}`, middleware.IdempotencyKeyHeader, "print-42")
	second := perform(router, http.MethodPost, path, `{"use_weight": 10}`, middleware.IdempotencyKeyHeader, "print-42")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
	svc.AssertNumberOfCalls(t, "Use", 1)
}

func TestSpoolHandler_Delete(t *testing.T) {
	id := primitive.NewObjectID()
	svc := &mocks.MockSpoolService{}
	svc.On("Delete", mock.Anything, id).Return(nil)
	router := testRouter(RouterConfig{SpoolService: svc})

	w := perform(router, http.MethodDelete, "/api/spools/"+id.Hex(), "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	svc.AssertExpectations(t)
}
