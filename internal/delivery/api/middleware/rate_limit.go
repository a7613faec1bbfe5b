package middleware

import (
	"sync"
	"time"

	"fileshare/config"
	deliverycontext "fileshare/internal/delivery/context"
	domainerrors "fileshare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

// NewUploadRateLimiter allows share.rateLimit.requests uploads in any rolling window for each
// caller. Callers are identified by user ID when authenticated and by client IP otherwise.
func NewUploadRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limit := cfg.Share.RateLimit

	return newUploadRateLimiter(NewSlidingWindowStore(limit.Requests, limit.Window, time.Now))
}

func newUploadRateLimiter(store echomiddleware.RateLimiterStore) echo.MiddlewareFunc {
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if userID, ok := deliverycontext.GetUserID(c); ok {
				return "user:" + userID.String(), nil
			}

			return "ip:" + c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return errors.Wrap(domainerrors.ErrForbidden, err.Error())
		},
		DenyHandler: func(_ echo.Context, identifier string, _ error) error {
			return errors.Wrap(domainerrors.ErrRateLimited, identifier)
		},
	})
}

// SlidingWindowStore is an echo RateLimiterStore that admits at most limit requests per
// identifier within any span of window. Denied requests are not recorded.
type SlidingWindowStore struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	now         func() time.Time
	visitors    map[string]*windowVisitor
	lastCleanup time.Time
}

// windowVisitor keeps the admission times of one caller in a ring. Once full, next points at
// the oldest entry.
type windowVisitor struct {
	hits []time.Time
	next int
	last time.Time
}

var _ echomiddleware.RateLimiterStore = (*SlidingWindowStore)(nil)

// NewSlidingWindowStore falls back to 5 requests per minute for non-positive settings.
func NewSlidingWindowStore(limit int, window time.Duration, now func() time.Time) *SlidingWindowStore {
	if limit <= 0 {
		limit = 5
	}
	if window <= 0 {
		window = time.Minute
	}

	return &SlidingWindowStore{
		limit:       limit,
		window:      window,
		now:         now,
		visitors:    make(map[string]*windowVisitor),
		lastCleanup: now(),
	}
}

// Allow records and admits the request unless the caller already has limit requests inside
// the window ending now.
func (s *SlidingWindowStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastCleanup) > s.window {
		s.cleanupStaleVisitors(now)
	}

	v, ok := s.visitors[identifier]
	if !ok {
		v = &windowVisitor{hits: make([]time.Time, 0, s.limit)}
		s.visitors[identifier] = v
	}

	if len(v.hits) < s.limit {
		v.hits = append(v.hits, now)
		v.last = now

		return true, nil
	}

	if now.Sub(v.hits[v.next]) < s.window {
		return false, nil
	}

	v.hits[v.next] = now
	v.next = (v.next + 1) % s.limit
	v.last = now

	return true, nil
}

// cleanupStaleVisitors forgets callers with no admission inside the window. Caller holds mu.
func (s *SlidingWindowStore) cleanupStaleVisitors(now time.Time) {
	for id, v := range s.visitors {
		if now.Sub(v.last) >= s.window {
			delete(s.visitors, id)
		}
	}
	s.lastCleanup = now
}
