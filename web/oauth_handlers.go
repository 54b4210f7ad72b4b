package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mww/league_dashboard/controller"
	"github.com/unrolled/render"
)

func loginHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := ctrl.LoginStart()
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}

		http.Redirect(w, r, url, http.StatusSeeOther)
	}
}

func loginCallbackHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		code := params.Get("code")
		state := params.Get("state")

		session, err := ctrl.Login(r.Context(), state, code)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}

		http.SetCookie(w, newSessionCookie(session))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func logoutHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookie); err == nil {
			if err := ctrl.Logout(r.Context(), cookie.Value); err != nil {
				renderCtrlError(render, w, err)
				return
			}
		}

		http.SetCookie(w, expiredSessionCookie())
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func linkHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform := chi.URLParam(r, "platform")

		url, err := ctrl.LinkStart(userFrom(r).ID, platform)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}

		http.Redirect(w, r, url, http.StatusSeeOther)
	}
}

func linkCallbackHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		code := params.Get("code")
		state := params.Get("state")

		conn, err := ctrl.LinkComplete(r.Context(), state, code)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, conn)
	}
}
