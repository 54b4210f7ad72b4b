package web

import (
	"context"
	"net/http"
	"time"

	"github.com/mww/league_dashboard/controller"
	"github.com/mww/league_dashboard/model"
	"github.com/unrolled/render"
)

const sessionCookie = "sid"

type contextKey string

const userContextKey = contextKey("user")

// requireUser rejects requests without a valid session and makes the
// resolved user available via userFrom.
func requireUser(ctrl controller.C, render *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookie)
			if err != nil {
				renderError(render, w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := ctrl.GetSessionUser(r.Context(), cookie.Value)
			if err != nil {
				renderError(render, w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFrom(r *http.Request) *model.User {
	user, _ := r.Context().Value(userContextKey).(*model.User)
	return user
}

func newSessionCookie(session *model.Session) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.Expire,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
