package controllers

import (
	"net/http"

	"github.com/JRGCaponde/peixaria-backend/api/responses"
	"github.com/JRGCaponde/peixaria-backend/api/validators"
	customersvc "github.com/JRGCaponde/peixaria-backend/internal/customers"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/logger"
)

// ListCustomers returns every registered customer.
func ListCustomers(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.List(r.Context()))
	}
}

// CreateCustomer registers a customer from the back office.
func CreateCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		var body customersvc.CreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customer, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, customer)
	}
}
