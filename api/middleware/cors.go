package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",          // local dev
	"http://localhost:5500",          // live-server preview
	"https://bakedbounty.com",        // storefront
	"https://www.bakedbounty.com",    // storefront www
	"https://baked-bounty.vercel.app", // preview deployment
}

// CORS returns middleware that applies the storefront's allowed origin policy.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Visitor-Id", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Visitor-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
