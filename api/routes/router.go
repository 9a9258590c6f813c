package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BVKSH0/baked-bounty-backend/api/controllers"
	"github.com/BVKSH0/baked-bounty-backend/api/middleware"
	"github.com/BVKSH0/baked-bounty-backend/internal/cart"
	"github.com/BVKSH0/baked-bounty-backend/internal/catalog"
	"github.com/BVKSH0/baked-bounty-backend/internal/presenter"
	"github.com/BVKSH0/baked-bounty-backend/internal/productpage"
	"github.com/BVKSH0/baked-bounty-backend/internal/slider"
	"github.com/BVKSH0/baked-bounty-backend/pkg/config"
	"github.com/BVKSH0/baked-bounty-backend/pkg/db"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
	"github.com/BVKSH0/baked-bounty-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	cat *catalog.Catalog,
	cartService cart.Service,
	notifier *presenter.Notifier,
	pageLoader *productpage.Loader,
	reviewsSlider *slider.Controller,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbClient, redisClient))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Visitor(logg))

		r.Get("/ping", controllers.VisitorPing())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(cat, logg))
			r.Get("/resolve-thumbnail", controllers.CatalogResolveThumbnail(cat, logg))
		})

		r.Get("/product-page", controllers.ProductDetail(pageLoader, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))

			r.Route("/items", func(r chi.Router) {
				r.With(middleware.SubmitGuard(redisClient, cfg.Cart.SubmitCooldown, logg)).
					Post("/", controllers.CartAddItem(cartService, notifier, logg))
				r.Put("/", controllers.CartSetQuantity(cartService, logg))
				r.Delete("/", controllers.CartRemoveItem(cartService, logg))
			})

			r.Post("/badge", controllers.CartBadge(cartService, logg))
			r.Route("/toast", func(r chi.Router) {
				r.Get("/", controllers.CartToast(notifier, logg))
				r.Delete("/", controllers.CartToastDismiss(notifier, logg))
			})
		})

		r.Route("/storefront/reviews-slider", func(r chi.Router) {
			r.Get("/", controllers.ReviewsSliderView(reviewsSlider, logg))
			r.Post("/", controllers.ReviewsSliderCommand(reviewsSlider, cfg.Slider.AutoAdvance, logg))
		})
	})

	return r
}
