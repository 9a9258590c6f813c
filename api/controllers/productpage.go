package controllers

import (
	"net/http"

	"github.com/BVKSH0/baked-bounty-backend/api/responses"
	"github.com/BVKSH0/baked-bounty-backend/internal/productpage"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
)

// ProductDetail resolves the detail view for the id query parameter. A
// missing or unknown id is the page's error state, carried as NOT_FOUND.
func ProductDetail(loader *productpage.Loader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		view, err := loader.Load(r.URL.Query().Get("id"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
