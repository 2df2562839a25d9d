// Package feed holds the live view-model state fed by the transaction push
// stream: a bounded chronological detail list, a bounded geo-marker set
// with transient arrival highlighting, and an ephemeral notification queue.
// Renderers consume snapshots; they never share the underlying slices.
package feed

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"fraudwatch/internal/sound"
	"fraudwatch/internal/transform"
	"fraudwatch/internal/types"
	"fraudwatch/pkg/log"
)

// MaxEntries caps both the detail list and the marker set. Oldest entries
// are dropped silently once the cap is exceeded.
const MaxEntries = 100

// DefaultHighlightTTL is how long a marker stays in the newly-arrived set.
const DefaultHighlightTTL = 3 * time.Second

// StoreConfig configures a Store.
type StoreConfig struct {
	HighlightTTL time.Duration
	SoundEnabled bool
}

// Store is the live feed state machine. All transitions run under a single
// mutex so each arrival is applied atomically with respect to timer-driven
// highlight expiry.
type Store struct {
	mu         sync.Mutex
	details    []types.DetailRecord // newest first
	markers    []types.MarkerRecord // arrival order, trimmed to most recent
	latest     *types.DetailRecord
	highlights map[string]*time.Timer // marker ID -> expiry timer
	closed     bool

	highlightTTL  time.Duration
	soundEnabled  bool
	notifications *NotificationQueue
	emitter       sound.Emitter
	logger        log.Logger

	eventsSeen atomic.Int64
	fraudSeen  atomic.Int64
}

// NewStore creates a new Store. The notification queue and sound emitter
// are optional; a nil queue disables notifications and a nil emitter
// disables audio regardless of SoundEnabled.
func NewStore(cfg StoreConfig, notifications *NotificationQueue, emitter sound.Emitter, logger log.Logger) *Store {
	ttl := cfg.HighlightTTL
	if ttl <= 0 {
		ttl = DefaultHighlightTTL
	}

	return &Store{
		highlights:    make(map[string]*time.Timer),
		highlightTTL:  ttl,
		soundEnabled:  cfg.SoundEnabled,
		notifications: notifications,
		emitter:       emitter,
		logger:        logger,
	}
}

// Ingest applies one arriving wire event: translates it, updates latest,
// prepends the detail, appends the marker, marks the marker as newly
// arrived with timed expiry, enqueues a notification and fires the audio
// cue. It is the delivery callback handed to the stream source and must
// stay fast; nothing here blocks.
func (s *Store) Ingest(e *types.WireEvent) {
	detail := transform.ToDetail(e)
	marker := transform.ToMarker(e)
	marker.ID = uuid.NewString()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.latest = &detail

	s.details = append([]types.DetailRecord{detail}, s.details...)
	if len(s.details) > MaxEntries {
		s.details = s.details[:MaxEntries]
	}

	s.markers = append(s.markers, marker)
	if len(s.markers) > MaxEntries {
		s.markers = s.markers[len(s.markers)-MaxEntries:]
	}

	// Each highlight key gets its own timer so a burst of arrivals never
	// extends the lifetime of earlier keys.
	id := marker.ID
	s.highlights[id] = time.AfterFunc(s.highlightTTL, func() {
		s.expireHighlight(id)
	})
	s.mu.Unlock()

	s.eventsSeen.Add(1)
	if e.IsFraud {
		s.fraudSeen.Add(1)
	}

	if s.notifications != nil {
		s.notifications.Enqueue(detail)
	}

	s.playCue(e.IsFraud)

	if s.logger != nil {
		s.logger.Debugf(context.Background(), "Ingested transaction %s (%s, fraud=%t)",
			detail.TransactionID, detail.TransactionStatus, detail.IsFraud)
	}
}

// expireHighlight removes one highlight key. Safe after Close; a timer
// firing for an already-removed key is a no-op.
func (s *Store) expireHighlight(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.highlights, id)
}

// playCue dispatches the audio side effect without awaiting it. A failing
// or panicking emitter never reaches the ingest path.
func (s *Store) playCue(fraud bool) {
	if !s.soundEnabled || s.emitter == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil && s.logger != nil {
				s.logger.Warnf(context.Background(), "Sound emitter panicked: %v", r)
			}
		}()
		s.emitter.Play(fraud)
	}()
}

// Details returns a newest-first snapshot of the detail list.
func (s *Store) Details() []types.DetailRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.DetailRecord, len(s.details))
	copy(out, s.details)
	return out
}

// Markers returns a snapshot of the marker set in arrival order.
func (s *Store) Markers() []types.MarkerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.MarkerRecord, len(s.markers))
	copy(out, s.markers)
	return out
}

// Latest returns a copy of the most recent arrival, or nil before the
// first event.
func (s *Store) Latest() *types.DetailRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil {
		return nil
	}
	latest := *s.latest
	return &latest
}

// HighlightedMarkerIDs returns the marker IDs currently flagged as newly
// arrived.
func (s *Store) HighlightedMarkerIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.highlights))
	for id := range s.highlights {
		ids = append(ids, id)
	}
	return ids
}

// IsHighlighted reports whether the given marker ID is still in the
// newly-arrived set.
func (s *Store) IsHighlighted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.highlights[id]
	return ok
}

// Stats returns ingest counters for the status surface.
func (s *Store) Stats() (eventsSeen, fraudSeen int64) {
	return s.eventsSeen.Load(), s.fraudSeen.Load()
}

// Close stops all pending highlight timers and rejects further ingestion.
// Timers that already fired prune harmlessly.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.highlights {
		timer.Stop()
		delete(s.highlights, id)
	}
}
