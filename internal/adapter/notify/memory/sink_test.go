package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"petverse/internal/app/ports"
)

var _ ports.NotificationLog = (*Sink)(nil)

func newTestSink(capacity int) *Sink {
	s := NewSink(capacity)
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("n-%d", seq)
	}
	s.now = func() time.Time { return time.Unix(1_700_000_000, 0).UTC() }
	return s
}

func TestRecentNewestFirst(t *testing.T) {
	s := newTestSink(10)
	ctx := context.Background()
	s.Notify(ctx, "pet-1", ports.SeverityInfo, "first")
	s.Notify(ctx, "pet-1", ports.SeverityWarning, "second")

	got, err := s.Recent(ctx, "pet-1", 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[0].Message != "second" || got[1].Message != "first" {
		t.Fatalf("got %+v", got)
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Fatal("expected distinct non-empty ids")
	}
}

func TestRecentFiltersByPet(t *testing.T) {
	s := newTestSink(10)
	ctx := context.Background()
	s.Notify(ctx, "pet-1", ports.SeverityInfo, "mine")
	s.Notify(ctx, "pet-2", ports.SeverityInfo, "theirs")

	got, err := s.Recent(ctx, "pet-1", 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || got[0].Message != "mine" {
		t.Fatalf("got %+v", got)
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	s := newTestSink(2)
	ctx := context.Background()
	s.Notify(ctx, "pet-1", ports.SeverityInfo, "a")
	s.Notify(ctx, "pet-1", ports.SeverityInfo, "b")
	s.Notify(ctx, "pet-1", ports.SeverityInfo, "c")

	got, _ := s.Recent(ctx, "pet-1", 0)
	if len(got) != 2 || got[0].Message != "c" || got[1].Message != "b" {
		t.Fatalf("got %+v", got)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	s := newTestSink(10)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		s.Notify(ctx, "pet-1", ports.SeverityInfo, "m")
	}
	got, _ := s.Recent(ctx, "pet-1", 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}
