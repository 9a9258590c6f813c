package controllers

import (
	"net/http"
	"time"

	"github.com/BVKSH0/baked-bounty-backend/api/responses"
	"github.com/BVKSH0/baked-bounty-backend/api/validators"
	"github.com/BVKSH0/baked-bounty-backend/internal/slider"
	pkgerrors "github.com/BVKSH0/baked-bounty-backend/pkg/errors"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
)

// ReviewsSliderView returns the carousel's current window and dot row.
func ReviewsSliderView(ctrl *slider.Controller, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, ctrl.View())
	}
}

type sliderCommandRequest struct {
	Action string `json:"action" validate:"required,oneof=next prev goto swipe resize"`
	Page   int    `json:"page"`
	DeltaX int    `json:"delta_x"`
	Width  int    `json:"width"`
}

// ReviewsSliderCommand applies a manual navigation command. Every manual
// action restarts the auto-advance countdown, matching the on-page pause.
func ReviewsSliderCommand(ctrl *slider.Controller, autoAdvance time.Duration, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload sliderCommandRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var view slider.View
		switch payload.Action {
		case "next":
			view = ctrl.Next()
		case "prev":
			view = ctrl.Prev()
		case "goto":
			view = ctrl.GoTo(payload.Page)
		case "swipe":
			view = ctrl.Swipe(payload.DeltaX)
		case "resize":
			if payload.Width <= 0 {
				responses.WriteError(ctx, logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "width must be positive for resize"))
				return
			}
			view = ctrl.Resize(payload.Width)
		}

		if payload.Action != "resize" {
			ctrl.ResetTimer(autoAdvance)
		}
		responses.WriteSuccess(w, view)
	}
}
