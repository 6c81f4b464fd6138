package health

import (
	"context"
	"time"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service encapsulates health-related checks.
type Service struct {
	Mode    string
	DB      Pinger
	Timeout time.Duration
}

// NewService constructs a new health service. db may be nil.
func NewService(mode string, db Pinger) *Service {
	return &Service{Mode: mode, DB: db, Timeout: 2 * time.Second}
}

// Status returns the health payload merged into /api/v1/health.
func (s *Service) Status(ctx context.Context) map[string]any {
	out := map[string]any{"mode": s.Mode}
	if s.DB == nil {
		return out
	}
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		out["ok"] = false
		out["database"] = "unreachable"
		return out
	}
	out["database"] = "ok"
	return out
}
