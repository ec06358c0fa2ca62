package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/logger"
	"github.com/guttosm/spool-service/internal/metrics"
)

// EntryWriter persists batches of log entries.
type EntryWriter interface {
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
}

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is the size of the log entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines processing logs.
	NumWorkers int
	// BatchSize is the maximum number of entries written in one call.
	BatchSize int
	// FlushInterval bounds how long a partial batch waits.
	FlushInterval time.Duration
	// WriteTimeout is the timeout for writing a batch to the database.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns sensible defaults for the async logger.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     50,
		FlushInterval: 500 * time.Millisecond,
		WriteTimeout:  5 * time.Second,
	}
}

func (cfg AsyncLoggerConfig) withDefaults() AsyncLoggerConfig {
	def := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	return cfg
}

// AsyncLoggerStats is a snapshot of the logger counters.
type AsyncLoggerStats struct {
	Enqueued int64 `json:"enqueued"`
	Dropped  int64 `json:"dropped"`
	Written  int64 `json:"written"`
	Errors   int64 `json:"errors"`
}

// AsyncLogger buffers request and audit entries and writes them in batches
// from a fixed pool of workers. Entries are dropped when the buffer is full.
type AsyncLogger struct {
	writer   EntryWriter
	cfg      AsyncLoggerConfig
	entryCh  chan *model.LogEntry
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
	wg       sync.WaitGroup

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncLogger starts the worker pool. A nil writer yields a nil logger,
// which accepts and discards entries.
func NewAsyncLogger(writer EntryWriter, cfg AsyncLoggerConfig) *AsyncLogger {
	if writer == nil {
		return nil
	}
	cfg = cfg.withDefaults()

	al := &AsyncLogger{
		writer:  writer,
		cfg:     cfg,
		entryCh: make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:  make(chan struct{}),
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}

	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, al.cfg.BatchSize)
	for {
		select {
		case entry := <-al.entryCh:
			batch = append(batch, entry)
			if len(batch) >= al.cfg.BatchSize {
				batch = al.flush(batch)
			}
		case <-ticker.C:
			batch = al.flush(batch)
		case <-al.stopCh:
			// Drain whatever is still buffered.
			for {
				select {
				case entry := <-al.entryCh:
					batch = append(batch, entry)
					if len(batch) >= al.cfg.BatchSize {
						batch = al.flush(batch)
					}
				default:
					al.flush(batch)
					return
				}
			}
		}
	}
}

// flush writes the batch and returns a fresh one.
func (al *AsyncLogger) flush(batch []*model.LogEntry) []*model.LogEntry {
	if len(batch) == 0 {
		return batch
	}

	ctx, cancel := context.WithTimeout(context.Background(), al.cfg.WriteTimeout)
	defer cancel()

	if err := al.writer.CreateLogs(ctx, batch); err != nil {
		al.errors.Add(int64(len(batch)))
		metrics.RecordLogEntries("failed", len(batch))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to write async log batch")
	} else {
		al.written.Add(int64(len(batch)))
		metrics.RecordLogEntries("written", len(batch))
	}
	return make([]*model.LogEntry, 0, al.cfg.BatchSize)
}

// Log enqueues an entry. It reports false when the entry was dropped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al == nil || entry == nil {
		return false
	}
	if al.stopped.Load() {
		al.drop()
		return false
	}
	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.drop()
		return false
	}
}

func (al *AsyncLogger) drop() {
	al.dropped.Add(1)
	metrics.RecordLogEntries("dropped", 1)
}

// Stop flushes pending entries and waits for the workers. Safe to call twice.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}
	al.stopOnce.Do(func() {
		al.stopped.Store(true)
		close(al.stopCh)
		al.wg.Wait()
	})
}

// Stats returns current async logger statistics.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	if al == nil {
		return AsyncLoggerStats{}
	}
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Errors:   al.errors.Load(),
	}
}
