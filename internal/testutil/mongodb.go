//go:build integration

// Package testutil runs the MongoDB instance shared by a package's
// integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoImage is the server image started for integration tests.
const MongoImage = "mongo:7.0"

// ExternalURIEnv points the tests at an already running server instead of a
// container.
const ExternalURIEnv = "MONGODB_TEST_URI"

// maxDBNameLen keeps generated names well under MongoDB's 64 byte limit.
const maxDBNameLen = 48

var (
	shared     sharedMongo
	dbSequence atomic.Uint64
)

type sharedMongo struct {
	once      sync.Once
	container testcontainers.Container
	uri       string
	err       error
}

func (s *sharedMongo) start(ctx context.Context) error {
	s.once.Do(func() {
		if uri := os.Getenv(ExternalURIEnv); uri != "" {
			s.uri = uri
			return
		}

		container, err := mongodb.Run(ctx, MongoImage)
		if err != nil {
			s.err = fmt.Errorf("start mongodb container: %w", err)
			return
		}
		uri, err := container.ConnectionString(ctx)
		if err != nil {
			_ = container.Terminate(ctx)
			s.err = fmt.Errorf("mongodb connection string: %w", err)
			return
		}
		s.container, s.uri = container, uri
	})
	return s.err
}

func (s *sharedMongo) stop(ctx context.Context) error {
	if s.container == nil {
		return nil
	}
	if err := s.container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

// SetupTestMainWithMongoDB starts the shared server, runs the tests and
// tears the container down again:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if err := shared.start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	code := m.Run()

	if err := shared.stop(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	return code
}

// GetSharedContainerURI returns the connection URI of the shared server.
// It panics when called outside SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	if shared.uri == "" {
		panic("testutil: shared MongoDB not started; use SetupTestMainWithMongoDB in TestMain")
	}
	return shared.uri
}

var dbNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "$", "_", "\"", "_")

// SanitizeDBName turns a test name into a unique database name so parallel
// tests never share collections.
func SanitizeDBName(testName string) string {
	name := dbNameReplacer.Replace(testName)
	if len(name) > maxDBNameLen {
		name = name[:maxDBNameLen]
	}
	return fmt.Sprintf("%s_%d", name, dbSequence.Add(1))
}
