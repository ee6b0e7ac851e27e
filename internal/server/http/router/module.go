package router

import (
	"go.uber.org/fx"

	"github.com/L1nkStart/authsvc/internal/config"
	"github.com/L1nkStart/authsvc/internal/pkg/ratelimit"
)

func newLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow)
}

// Module provides the HTTP router and its rate limiter.
var Module = fx.Module("router",
	fx.Provide(newLimiter),
	fx.Provide(Setup),
)
