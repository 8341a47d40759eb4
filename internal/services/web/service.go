package web

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	// ErrEmptyTerm is returned when a lookup is submitted without a term.
	ErrEmptyTerm = errors.New("empty term")
	// ErrLookupInFlight is returned when a client submits a lookup while its
	// previous one is still running.
	ErrLookupInFlight = errors.New("lookup already in flight")
)

// LookupGateway resolves a medical term to a plain-language explanation.
type LookupGateway interface {
	Explain(ctx context.Context, term string) (string, error)
}

// lookupService serializes lookups per client: each page session has at most
// one request in flight, later submissions from the same client are rejected
// rather than queued. Clients never block each other.
type lookupService struct {
	gateway LookupGateway

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func newLookupService(gateway LookupGateway) *lookupService {
	return &lookupService{
		gateway:  gateway,
		inFlight: make(map[string]struct{}),
	}
}

func (s *lookupService) Lookup(ctx context.Context, client, term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", ErrEmptyTerm
	}

	// A request without a client identity has no page session to serialize
	// against, so it proceeds unguarded.
	client = strings.TrimSpace(client)
	if client != "" {
		s.mu.Lock()
		if _, busy := s.inFlight[client]; busy {
			s.mu.Unlock()
			return "", ErrLookupInFlight
		}
		s.inFlight[client] = struct{}{}
		s.mu.Unlock()
		defer func() {
			s.mu.Lock()
			delete(s.inFlight, client)
			s.mu.Unlock()
		}()
	}

	return s.gateway.Explain(ctx, term)
}
