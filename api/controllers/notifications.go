package controllers

import (
	"net/http"

	"github.com/JRGCaponde/peixaria-backend/api/responses"
	notificationsvc "github.com/JRGCaponde/peixaria-backend/internal/notifications"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/logger"
)

// ListNotifications returns the feed newest first with an unread count.
func ListNotifications(svc notificationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.List(r.Context()))
	}
}

// MarkNotificationsRead flips every notification to read.
func MarkNotificationsRead(svc notificationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications service unavailable"))
			return
		}

		svc.MarkAllRead(r.Context())
		responses.WriteSuccess(w, map[string]bool{"marked": true})
	}
}
