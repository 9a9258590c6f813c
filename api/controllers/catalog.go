package controllers

import (
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/BVKSH0/baked-bounty-backend/api/responses"
	"github.com/BVKSH0/baked-bounty-backend/api/validators"
	"github.com/BVKSH0/baked-bounty-backend/internal/catalog"
	pkgerrors "github.com/BVKSH0/baked-bounty-backend/pkg/errors"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
)

var (
	shuffleMu  sync.Mutex
	shuffleRng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// CatalogList returns the product table, optionally filtered by category or
// shuffled down to a random subset via ?random=n.
func CatalogList(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
			responses.WriteSuccess(w, map[string]any{"products": cat.ByCategory(category)})
			return
		}

		count, err := validators.ParseQueryInt(r, "random", 0, 1, cat.Len())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if count > 0 {
			shuffleMu.Lock()
			picks := cat.Random(shuffleRng, count)
			shuffleMu.Unlock()
			responses.WriteSuccess(w, map[string]any{"products": picks})
			return
		}

		responses.WriteSuccess(w, map[string]any{"products": cat.All()})
	}
}

// CatalogResolveThumbnail maps a shop tile's image path to its product id,
// the navigation counterpart of an add-to-cart click on the same tile.
func CatalogResolveThumbnail(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		image := strings.TrimSpace(r.URL.Query().Get("image"))
		if image == "" {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "image query parameter required"))
			return
		}

		id, err := cat.ProductIDForThumbnail(image)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{
			"product_id": id,
			"target":     "sproduct.html?id=" + id,
		})
	}
}
