package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const batchSize = 50

// pgSink is shared by a PGHandler and every handler derived from it.
type pgSink struct {
	db     *gorm.DB
	mu     sync.Mutex
	buffer []models.SystemLog
	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

// PGHandler is an slog.Handler that batches ERROR+ records into system_logs.
type PGHandler struct {
	sink  *pgSink
	attrs []slog.Attr
}

func NewPGHandler(db *gorm.DB, interval time.Duration) *PGHandler {
	s := &pgSink{
		db:     db,
		buffer: make([]models.SystemLog, 0, batchSize),
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.flushLoop()
	return &PGHandler{sink: s}
}

func (s *pgSink) flushLoop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ticker.C:
			s.flush()
		case <-s.done:
			s.flush()
			return
		}
	}
}

func (s *pgSink) flush() {
	s.mu.Lock()
	if len(s.buffer) == 0 {
		s.mu.Unlock()
		return
	}
	batch := s.buffer
	s.buffer = make([]models.SystemLog, 0, batchSize)
	s.mu.Unlock()

	if err := s.db.CreateInBatches(batch, batchSize).Error; err != nil {
		// Written to stderr directly; logging through slog would recurse.
		fmt.Fprintf(os.Stderr, "failed to flush %d system logs: %v\n", len(batch), err)
	}
}

func (s *pgSink) add(entry models.SystemLog) {
	s.mu.Lock()
	s.buffer = append(s.buffer, entry)
	full := len(s.buffer) >= batchSize
	s.mu.Unlock()

	if full {
		go s.flush()
	}
}

// Stop flushes pending records and stops the background loop.
func (h *PGHandler) Stop() {
	h.sink.ticker.Stop()
	close(h.sink.done)
	h.sink.wg.Wait()
}

// Flush writes buffered records immediately.
func (h *PGHandler) Flush() {
	h.sink.flush()
}

func (h *PGHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *PGHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	apply := func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			entry.RequestID = a.Value.String()
		case "actor_id":
			s := a.Value.String()
			entry.ActorID = &s
		case "role":
			entry.Role = a.Value.String()
		case "method":
			entry.Method = a.Value.String()
		case "path":
			entry.Path = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		case "latency_ms":
			switch v := a.Value.Any().(type) {
			case float64:
				entry.LatencyMs = int(math.Round(v))
			case int64:
				entry.LatencyMs = int(v)
			}
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	}
	for _, a := range h.attrs {
		apply(a)
	}
	record.Attrs(apply)

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.sink.add(entry)
	return nil
}

func (h *PGHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &PGHandler{sink: h.sink, attrs: merged}
}

// WithGroup is ignored; system_logs has a flat schema.
func (h *PGHandler) WithGroup(name string) slog.Handler {
	return h
}
