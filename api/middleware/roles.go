package middleware

import (
	"net/http"

	"github.com/JRGCaponde/peixaria-backend/api/responses"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/logger"
)

// RequireActor gates a route to the listed actor kinds.
func RequireActor(logg *logger.Logger, kinds ...enums.ActorKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := ActorKindFromContext(r.Context())
			for _, kind := range kinds {
				if actor == kind {
					next.ServeHTTP(w, r)
					return
				}
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "role required"))
		})
	}
}

// RequireBackOffice admits admin and staff identities only.
func RequireBackOffice(logg *logger.Logger) func(http.Handler) http.Handler {
	return RequireActor(logg, enums.ActorKindAdmin, enums.ActorKindStaff)
}

// RequireAdmin admits the admin identity only.
func RequireAdmin(logg *logger.Logger) func(http.Handler) http.Handler {
	return RequireActor(logg, enums.ActorKindAdmin)
}
