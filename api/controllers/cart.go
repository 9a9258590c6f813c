package controllers

import (
	"net/http"

	"github.com/BVKSH0/baked-bounty-backend/api/middleware"
	"github.com/BVKSH0/baked-bounty-backend/api/responses"
	"github.com/BVKSH0/baked-bounty-backend/api/validators"
	cartsvc "github.com/BVKSH0/baked-bounty-backend/internal/cart"
	"github.com/BVKSH0/baked-bounty-backend/internal/presenter"
	pkgerrors "github.com/BVKSH0/baked-bounty-backend/pkg/errors"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
)

// CartFetch returns the visitor's cart snapshot and rendered cart page.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Load(r.Context(), middleware.VisitorIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse{
			Cart: snap,
			Page: presenter.BuildCartPage(snap),
		})
	}
}

type cartResponse struct {
	Cart *cartsvc.Snapshot      `json:"cart"`
	Page presenter.CartPageView `json:"page"`
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// CartAddItem adds a product to the cart and raises the added-to-cart toast.
func CartAddItem(svc cartsvc.Service, notifier *presenter.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		visitorID := middleware.VisitorIDFromContext(ctx)

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if payload.Quantity == 0 {
			payload.Quantity = 1
		}

		snap, err := svc.AddItem(ctx, visitorID, payload.ProductID, payload.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var toast *presenter.Toast
		if notifier != nil {
			name := payload.ProductID
			for _, item := range snap.Items {
				if item.ID == payload.ProductID {
					name = item.Name
					break
				}
			}
			toast, err = notifier.NotifyAdded(ctx, visitorID, payload.ProductID, name)
			if err != nil {
				// The add already persisted; a lost toast is not worth failing over.
				logg.Warn(logg.WithProductID(ctx, payload.ProductID), "toast not stored")
				toast = nil
			}
		}

		responses.WriteSuccess(w, addItemResponse{
			Cart:  snap,
			Page:  presenter.BuildCartPage(snap),
			Toast: toast,
		})
	}
}

type addItemResponse struct {
	Cart  *cartsvc.Snapshot      `json:"cart"`
	Page  presenter.CartPageView `json:"page"`
	Toast *presenter.Toast       `json:"toast,omitempty"`
}

type setQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// CartSetQuantity overwrites a line's quantity; zero or less removes it.
func CartSetQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snap, err := svc.SetQuantity(ctx, middleware.VisitorIDFromContext(ctx), payload.ProductID, payload.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse{Cart: snap, Page: presenter.BuildCartPage(snap)})
	}
}

type removeItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// CartRemoveItem deletes a line from the cart.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload removeItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snap, err := svc.RemoveItem(ctx, middleware.VisitorIDFromContext(ctx), payload.ProductID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse{Cart: snap, Page: presenter.BuildCartPage(snap)})
	}
}

// CartClear empties the visitor's cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snap, err := svc.Clear(ctx, middleware.VisitorIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse{Cart: snap, Page: presenter.BuildCartPage(snap)})
	}
}

type badgeRequest struct {
	Affordances []presenter.Affordance `json:"affordances" validate:"required,dive"`
}

// CartBadge computes badge decisions for the affordances the page reports.
// Pages call it again on resize since affordance visibility shifts with the
// viewport.
func CartBadge(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload badgeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snap, err := svc.Load(ctx, middleware.VisitorIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"count":  snap.TotalItems,
			"badges": presenter.BadgePlan(snap.TotalItems, payload.Affordances),
		})
	}
}

// CartToast returns the visitor's pending added-to-cart toast, if any.
func CartToast(notifier *presenter.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if notifier == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifier unavailable"))
			return
		}
		toast, err := notifier.Pending(ctx, middleware.VisitorIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"toast": toast})
	}
}

// CartToastDismiss drops the pending toast ahead of its TTL.
func CartToastDismiss(notifier *presenter.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if notifier == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifier unavailable"))
			return
		}
		if err := notifier.Dismiss(ctx, middleware.VisitorIDFromContext(ctx)); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "dismissed"})
	}
}
