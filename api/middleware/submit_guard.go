package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BVKSH0/baked-bounty-backend/api/responses"
	pkgerrors "github.com/BVKSH0/baked-bounty-backend/pkg/errors"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
	pkgredis "github.com/BVKSH0/baked-bounty-backend/pkg/redis"
)

const guardScope = "add"

// SubmitGuard suppresses duplicate add-to-cart submissions. A short-lived
// marker is set per visitor/product pair; a second submission inside the
// cooldown window is rejected without reaching the cart service. This covers
// both double-bound click handlers and rapid repeat clicks.
func SubmitGuard(store pkgredis.GuardStore, cooldown time.Duration, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil || cooldown <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			productID := productIDFromBody(body)
			if productID == "" {
				// Let the controller produce the validation error.
				next.ServeHTTP(w, r)
				return
			}

			marker := VisitorIDFromContext(r.Context()) + "|" + productID
			key := store.GuardKey(guardScope, marker)

			acquired, err := store.SetNX(r.Context(), key, "1", cooldown)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check submit guard"))
				return
			}
			if !acquired {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeConflict, "duplicate submission suppressed"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func productIDFromBody(body []byte) string {
	var payload struct {
		ProductID string `json:"product_id"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.ProductID)
}
