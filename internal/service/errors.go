package service

import (
	"errors"
	"fmt"

	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrNotFound is returned when a referenced vendor, filament or spool does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write would break a reference or hits an archived spool.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput is returned for malformed identifiers and rejected values.
	ErrInvalidInput = errors.New("invalid input")
)

// Invalidator is notified after every successful inventory write.
type Invalidator interface {
	Invalidate()
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate() {}

func invalidatorOrNoop(inv Invalidator) Invalidator {
	if inv == nil {
		return noopInvalidator{}
	}
	return inv
}

// ParseID parses a hex ObjectID, reporting ErrInvalidInput for malformed values.
func ParseID(field, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s %q: %w", field, hex, ErrInvalidInput)
	}
	return id, nil
}

// checkRequest applies a request's field rules. Failures match ErrInvalidInput
// and keep the underlying validation error.
func checkRequest(req any) error {
	if err := dto.Check(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// NotFoundError names the missing resource. It matches ErrNotFound.
type NotFoundError struct {
	Resource string // "vendor", "filament", "spool" or "print_job"
	ID       string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " " + e.ID + ": " + ErrNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// translate maps repository errors onto service sentinels.
func translate(err error, what string, id primitive.ObjectID) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: what, ID: id.Hex()}
	}
	return err
}
