package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"petverse/internal/app/ports"
)

const defaultCapacity = 256

// Sink keeps the most recent notifications in a bounded ring so a client
// can poll them back. Older entries fall off the end.
type Sink struct {
	mu       sync.Mutex
	capacity int
	entries  []ports.Notification
	newID    func() string
	now      func() time.Time
}

func NewSink(capacity int) *Sink {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Sink{
		capacity: capacity,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func (s *Sink) Notify(ctx context.Context, petID string, severity ports.Severity, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, ports.Notification{
		ID:       s.newID(),
		PetID:    petID,
		Severity: severity,
		Message:  message,
		At:       s.now(),
	})
	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}
}

// Recent returns notifications newest first; an empty petID matches all.
func (s *Sink) Recent(ctx context.Context, petID string, limit int) ([]ports.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.Notification, 0, limit)
	for i := len(s.entries) - 1; i >= 0; i-- {
		if petID != "" && s.entries[i].PetID != petID {
			continue
		}
		out = append(out, s.entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
