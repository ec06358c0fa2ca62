//go:build !integration

package service_test

import (
	"errors"
	"testing"

	"github.com/guttosm/spool-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	valid := primitive.NewObjectID()

	tests := []struct {
		name    string
		input   string
		want    primitive.ObjectID
		wantErr error
	}{
		{name: "valid hex", input: valid.Hex(), want: valid},
		{name: "too short", input: "abc", wantErr: service.ErrInvalidInput},
		{name: "empty", input: "", wantErr: service.ErrInvalidInput},
		{name: "not hex", input: "zzzzzzzzzzzzzzzzzzzzzzzz", wantErr: service.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseID("spool_id", tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "spool_id")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotFoundError(t *testing.T) {
	var err error = &service.NotFoundError{Resource: "filament", ID: "665f1c2e8b3e4a0012345678"}

	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Equal(t, "filament 665f1c2e8b3e4a0012345678: not found", err.Error())

	var nf *service.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "filament", nf.Resource)
}
