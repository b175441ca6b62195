package controllers

import (
	"net/http"

	"github.com/JRGCaponde/peixaria-backend/api/middleware"
	"github.com/JRGCaponde/peixaria-backend/api/responses"
	"github.com/JRGCaponde/peixaria-backend/api/validators"
	checkoutsvc "github.com/JRGCaponde/peixaria-backend/internal/checkout"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/logger"
)

// Checkout turns the cart into an order.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var body checkoutsvc.Request
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := middleware.ActorKindFromContext(r.Context())
		order, err := svc.PlaceOrder(r.Context(), actor, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithOrderID(ctx, order.ID)
			logg.Info(ctx, "order.placed")
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// DeliverySlots lists the selectable delivery windows.
func DeliverySlots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, checkoutsvc.DeliverySlots())
	}
}
