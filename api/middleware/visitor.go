package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
)

const (
	visitorHeader = "X-Visitor-Id"
	visitorCookie = "bb_visitor"

	// visitorCookieMaxAge keeps the cart around between visits.
	visitorCookieMaxAge = 365 * 24 * time.Hour
)

// Visitor resolves the caller's visitor token, minting one when the request
// carries none. The token keys every cart record, so every route gets it.
func Visitor(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitorID := strings.TrimSpace(r.Header.Get(visitorHeader))
			if visitorID == "" {
				if cookie, err := r.Cookie(visitorCookie); err == nil {
					visitorID = strings.TrimSpace(cookie.Value)
				}
			}
			if visitorID == "" {
				visitorID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     visitorCookie,
					Value:    visitorID,
					Path:     "/",
					MaxAge:   int(visitorCookieMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			w.Header().Set(visitorHeader, visitorID)

			ctx := WithVisitorID(r.Context(), visitorID)
			if logg != nil {
				ctx = logg.WithVisitorID(ctx, visitorID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
