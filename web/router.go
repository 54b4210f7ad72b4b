package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/league_dashboard/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/login", loginHandler(ctrl, render))
	r.Get("/auth/callback", loginCallbackHandler(ctrl, render))
	r.Get("/logout", logoutHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Use(requireUser(ctrl, render))

		r.Get("/auth/user", sessionUserHandler(render))
		r.Get("/dashboard", dashboardHandler(ctrl, render))

		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", listLeaguesHandler(ctrl, render))
			r.Post("/", addLeagueHandler(ctrl, render))

			r.Route("/{leagueID:\\d+}", func(r chi.Router) {
				r.Get("/", getLeagueHandler(ctrl, render))
				r.Get("/teams", leagueTeamsHandler(ctrl, render))
				r.Get("/chat", leagueChatHandler(ctrl, render))
				r.Post("/chat", postChatHandler(ctrl, render))
			})
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", userTeamsHandler(ctrl, render))
			r.Post("/", addTeamHandler(ctrl, render))

			r.Route("/{teamID:\\d+}", func(r chi.Router) {
				r.Patch("/", updateTeamHandler(ctrl, render))
				r.Get("/stats", teamStatsHandler(ctrl, render))
				r.Post("/stats", addTeamStatsHandler(ctrl, render))
			})
		})

		r.Route("/connections", func(r chi.Router) {
			r.Get("/", connectionsHandler(ctrl, render))
			r.Get("/link/{platform}", linkHandler(ctrl, render))
			r.Get("/callback", linkCallbackHandler(ctrl, render))
		})

		r.Get("/platforms/leagues", platformLeaguesHandler(ctrl, render))
	})

	return r
}
