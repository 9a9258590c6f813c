package controllers

import (
	"net/http"

	"github.com/BVKSH0/baked-bounty-backend/api/middleware"
	"github.com/BVKSH0/baked-bounty-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func VisitorPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "visitor", "status": "ok"}
		if visitor := middleware.VisitorIDFromContext(r.Context()); visitor != "" {
			payload["visitor_id"] = visitor
		}
		responses.WriteSuccess(w, payload)
	}
}
