package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/mww/league_dashboard/controller"
	"github.com/mww/league_dashboard/db"
	"github.com/mww/league_dashboard/model"
	"github.com/unrolled/render"
)

var validate = validator.New()

// All error responses share the same shape: {"message": "..."}.
func renderError(render *render.Render, w http.ResponseWriter, status int, msg string) {
	render.JSON(w, status, map[string]string{"message": msg})
}

func renderCtrlError(render *render.Render, w http.ResponseWriter, err error) {
	switch {
	case controller.IsInvalid(err):
		renderError(render, w, http.StatusBadRequest, err.Error())
	case isNotFound(err):
		renderError(render, w, http.StatusNotFound, err.Error())
	default:
		renderError(render, w, http.StatusInternalServerError, err.Error())
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, db.ErrLeagueNotFound) ||
		errors.Is(err, db.ErrTeamNotFound) ||
		errors.Is(err, db.ErrUserNotFound) ||
		errors.Is(err, db.ErrConnectionNotFound)
}

// decodeAndValidate parses a JSON request body and runs the payload's
// validation tags. Any failure should be rendered as a 400.
func decodeAndValidate(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

func urlID(r *http.Request, name string) (int32, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

func sessionUserHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, userFrom(r))
	}
}

func dashboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := ctrl.GetDashboard(r.Context(), userFrom(r).ID)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, summaries)
	}
}

func listLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func addLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var lc model.LeagueCreate
		if err := decodeAndValidate(r, &lc); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		league, err := ctrl.AddLeague(r.Context(), &lc)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, league)
	}
}

func getLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		league, err := ctrl.GetLeague(r.Context(), id)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, league)
	}
}

func leagueTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		teams, err := ctrl.GetLeagueTeams(r.Context(), id)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func leagueChatHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		limit := 0
		if l := r.URL.Query().Get("limit"); l != "" {
			limit, err = strconv.Atoi(l)
			if err != nil {
				renderError(render, w, http.StatusBadRequest, err.Error())
				return
			}
		}

		msgs, err := ctrl.GetLeagueChatMessages(r.Context(), id, limit)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, msgs)
	}
}

func postChatHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		var mc model.ChatMessageCreate
		if err := decodeAndValidate(r, &mc); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		msg, err := ctrl.PostChatMessage(r.Context(), id, userFrom(r).ID, mc.Message)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, msg)
	}
}

func userTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.GetUserTeams(r.Context(), userFrom(r).ID)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func addTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tc model.TeamCreate
		if err := decodeAndValidate(r, &tc); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		team, err := ctrl.AddTeam(r.Context(), userFrom(r).ID, &tc)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, team)
	}
}

func updateTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "teamID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		var u model.TeamUpdate
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		team, err := ctrl.UpdateTeam(r.Context(), userFrom(r).ID, id, &u)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, team)
	}
}

func teamStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "teamID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		stats, err := ctrl.GetTeamWeeklyStats(r.Context(), id)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, stats)
	}
}

func addTeamStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "teamID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		var sc model.WeeklyStatsCreate
		if err := decodeAndValidate(r, &sc); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		stats, err := ctrl.AddWeeklyStats(r.Context(), userFrom(r).ID, id, &sc)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, stats)
	}
}

func connectionsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conns, err := ctrl.GetUserConnections(r.Context(), userFrom(r).ID)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, conns)
	}
}

func platformLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		username := params.Get("username")
		platform := params.Get("platform")
		season := params.Get("season")

		leagues, err := ctrl.GetLeaguesFromPlatform(r.Context(), username, platform, season)
		if err != nil {
			renderCtrlError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}
