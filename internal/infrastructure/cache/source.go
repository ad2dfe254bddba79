// Package cache memoizes transcript fetches so one portal scrape serves
// every computation of a run.
package cache

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"GPAConverter/internal/domain"
	"GPAConverter/internal/ports"
)

const transcriptKey = "transcript"

// Source decorates a TranscriptSource with a TTL cache.
type Source struct {
	inner  ports.TranscriptSource
	store  *gocache.Cache
	logger *slog.Logger
}

var _ ports.TranscriptSource = (*Source)(nil)

// NewSource wraps inner; entries live for ttl.
func NewSource(inner ports.TranscriptSource, ttl time.Duration, log *slog.Logger) *Source {
	return &Source{
		inner:  inner,
		store:  gocache.New(ttl, 0),
		logger: log,
	}
}

// FetchTranscript returns the cached transcript when fresh, otherwise it
// delegates to the wrapped source and stores the result. Errors are never
// cached.
func (s *Source) FetchTranscript(ctx context.Context) (domain.Transcript, error) {
	if cached, ok := s.store.Get(transcriptKey); ok {
		s.debug("transcript served from cache")
		return cached.(domain.Transcript), nil
	}

	transcript, err := s.inner.FetchTranscript(ctx)
	if err != nil {
		return nil, err
	}

	s.store.Set(transcriptKey, transcript, gocache.DefaultExpiration)
	return transcript, nil
}

func (s *Source) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
