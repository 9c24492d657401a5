// Package browse keeps the per-visitor state of the product listing page:
// active filters, search text, currency, page size and current page.
package browse

import (
	"context"
	"errors"
	"sync"
	"time"

	"mrfixit/internal/listing"
	"mrfixit/internal/models"
	"mrfixit/internal/services"
)

// ErrStaleResult is returned when a search finished after a newer one was
// started on the same session. Its result has been discarded.
var ErrStaleResult = errors.New("result superseded by a newer request")

// Searcher runs product listing queries.
type Searcher interface {
	Search(ctx context.Context, q services.ProductQuery) (listing.Page[models.Product], error)
}

// Snapshot is the externally visible state of a session.
type Snapshot struct {
	ID            string                        `json:"id"`
	Filters       models.FilterSpec             `json:"filters"`
	Currency      models.Currency               `json:"currency"`
	Page          int                           `json:"page"`
	PerPage       int                           `json:"per_page"`
	ActiveFilters int                           `json:"active_filters"`
	Result        *listing.Page[models.Product] `json:"result"`
}

// Session is one visitor's listing page. Every change that alters which items
// match (filters, search, currency, page size) returns to page 1.
type Session struct {
	id       string
	searcher Searcher
	seq      listing.Sequencer

	mu       sync.Mutex
	query    services.ProductQuery
	result   *listing.Page[models.Product]
	lastSeen time.Time
}

func newSession(id string, searcher Searcher, perPage int, now time.Time) *Session {
	return &Session{
		id:       id,
		searcher: searcher,
		query: services.ProductQuery{
			Currency: models.CurrencyUSD,
			Page:     1,
			PerPage:  perPage,
		},
		lastSeen: now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// SetFilters replaces the sidebar filters. The search text is kept.
func (s *Session) SetFilters(ctx context.Context, spec models.FilterSpec) (Snapshot, error) {
	return s.update(ctx, func(q *services.ProductQuery) {
		query := q.Spec.Query
		q.Spec = listing.NormalizeSpec(spec)
		q.Spec.Query = query
		q.Page = 1
	})
}

// Search sets the title search text.
func (s *Session) Search(ctx context.Context, text string) (Snapshot, error) {
	return s.update(ctx, func(q *services.ProductQuery) {
		q.Spec.Query = text
		q.Page = 1
	})
}

// SetCurrency switches the currency prices are shown and filtered in.
func (s *Session) SetCurrency(ctx context.Context, c models.Currency) (Snapshot, error) {
	return s.update(ctx, func(q *services.ProductQuery) {
		q.Currency = c
		q.Page = 1
	})
}

// SetPerPage changes the page size. Non-positive sizes fall back to the default.
func (s *Session) SetPerPage(ctx context.Context, n int) (Snapshot, error) {
	return s.update(ctx, func(q *services.ProductQuery) {
		if n <= 0 {
			n = listing.DefaultPerPage
		}
		q.PerPage = n
		q.Page = 1
	})
}

// SetPage moves to page n. The result reports the clamped page.
func (s *Session) SetPage(ctx context.Context, n int) (Snapshot, error) {
	return s.update(ctx, func(q *services.ProductQuery) {
		q.Page = n
	})
}

// Reset clears filters and search text. Currency and page size are kept.
func (s *Session) Reset(ctx context.Context) (Snapshot, error) {
	return s.update(ctx, func(q *services.ProductQuery) {
		q.Spec = models.FilterSpec{}
		q.Page = 1
	})
}

// Refresh re-runs the current query.
func (s *Session) Refresh(ctx context.Context) (Snapshot, error) {
	return s.update(ctx, func(*services.ProductQuery) {})
}

// Snapshot returns the current state and the last accepted result.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		ID:            s.id,
		Filters:       s.query.Spec,
		Currency:      s.query.Currency,
		Page:          s.query.Page,
		PerPage:       s.query.PerPage,
		ActiveFilters: s.query.Spec.ActiveCount(),
		Result:        s.result,
	}
}

// update applies mutate, runs the search outside the lock and accepts the
// result only if no later update was issued meanwhile.
func (s *Session) update(ctx context.Context, mutate func(*services.ProductQuery)) (Snapshot, error) {
	s.mu.Lock()
	mutate(&s.query)
	token := s.seq.Issue()
	q := s.query
	s.mu.Unlock()

	page, err := s.searcher.Search(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seq.IsLatest(token) {
		return Snapshot{}, ErrStaleResult
	}
	if err != nil {
		return s.snapshot(), err
	}
	s.query.Page = page.Page
	s.result = &page
	return s.snapshot(), nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
