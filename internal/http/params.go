package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// paramError is a malformed path or query parameter. It matches
// service.ErrInvalidInput and is answered with a localized message.
type paramError struct {
	name       string
	raw        string
	messageKey string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.name, e.raw, service.ErrInvalidInput)
}

func (e *paramError) Unwrap() error { return service.ErrInvalidInput }

func badQuery(name, raw string) error {
	return &paramError{name: name, raw: raw, messageKey: i18n.ErrKeyInvalidQuery}
}

func badID(name, raw string) error {
	return &paramError{name: name, raw: raw, messageKey: i18n.ErrKeyInvalidID}
}

// pageParams reads limit and an offset parameter (offset or skip).
// A missing limit defaults to defaultPageLimit; larger values are clamped.
func pageParams(c *gin.Context, offsetParam string) (limit, offset int, err error) {
	limit, err = intQuery(c, "limit", defaultPageLimit)
	if err != nil {
		return 0, 0, err
	}
	if limit == 0 || limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset, err = intQuery(c, offsetParam, 0)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, badQuery(name, raw)
	}
	return v, nil
}

func boolQuery(c *gin.Context, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badQuery(name, raw)
	}
	return v, nil
}

// idQuery parses an optional ObjectID query parameter.
func idQuery(c *gin.Context, name string) (*primitive.ObjectID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, badID(name, raw)
	}
	return &id, nil
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (primitive.ObjectID, error) {
	raw := c.Param("id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, badID("id", raw)
	}
	return id, nil
}

// timeQuery parses an optional RFC3339 query parameter.
func timeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, badQuery(name, raw)
	}
	return &t, nil
}
