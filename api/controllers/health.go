package controllers

import (
	"context"
	"net/http"

	"github.com/BVKSH0/baked-bounty-backend/api/responses"
	"github.com/BVKSH0/baked-bounty-backend/pkg/config"
	pkgerrors "github.com/BVKSH0/baked-bounty-backend/pkg/errors"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
)

type pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BakedBounty-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the storefront's backing services answer.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("X-BakedBounty-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		check := func(name string, p pinger) {
			if p == nil {
				checks[name] = "skipped"
				return
			}
			if err := p.Ping(ctx); err != nil {
				checks[name] = "down"
				healthy = false
				if logg != nil {
					logg.Error(logg.WithField(ctx, "dependency", name), "readiness probe failed", err)
				}
				return
			}
			checks[name] = "up"
		}

		check("database", dbP)
		check("redis", redisP)

		if !healthy {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable").WithDetails(checks))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
