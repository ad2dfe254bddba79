package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"GPAConverter/internal/domain"
)

type countingSource struct {
	calls      int
	transcript domain.Transcript
	err        error
}

func (c *countingSource) FetchTranscript(ctx context.Context) (domain.Transcript, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.transcript, nil
}

func TestFetchTranscriptCaches(t *testing.T) {
	t.Parallel()

	inner := &countingSource{transcript: domain.Transcript{{Code: "INE5401", Credits: 4, Grade: 9}}}
	source := NewSource(inner, time.Minute, nil)

	ctx := context.Background()
	first, err := source.FetchTranscript(ctx)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := source.FetchTranscript(ctx)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if inner.calls != 1 {
		t.Fatalf("inner source called %d times, want 1", inner.calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Code != "INE5401" {
		t.Fatalf("cached transcript mismatch: %v vs %v", first, second)
	}
}

func TestFetchTranscriptExpires(t *testing.T) {
	t.Parallel()

	inner := &countingSource{transcript: domain.Transcript{{Code: "INE5402", Credits: 4, Grade: 8}}}
	source := NewSource(inner, 10*time.Millisecond, nil)

	ctx := context.Background()
	if _, err := source.FetchTranscript(ctx); err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := source.FetchTranscript(ctx); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("inner source called %d times after expiry, want 2", inner.calls)
	}
}

func TestFetchTranscriptDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	inner := &countingSource{err: errors.New("portal down")}
	source := NewSource(inner, time.Minute, nil)

	ctx := context.Background()
	if _, err := source.FetchTranscript(ctx); err == nil {
		t.Fatal("expected error from inner source")
	}

	inner.err = nil
	inner.transcript = domain.Transcript{{Code: "INE5403", Credits: 4, Grade: 7}}

	transcript, err := source.FetchTranscript(ctx)
	if err != nil {
		t.Fatalf("fetch after recovery: %v", err)
	}
	if len(transcript) != 1 {
		t.Fatalf("got %d records, want 1", len(transcript))
	}
	if inner.calls != 2 {
		t.Fatalf("inner source called %d times, want 2", inner.calls)
	}
}
