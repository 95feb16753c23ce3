package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Dosada05/league-admin/handlers"
	"github.com/Dosada05/league-admin/middleware"
	"github.com/Dosada05/league-admin/services"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Teams        *handlers.TeamHandler
	Competitions *handlers.CompetitionHandler
	Phases       *handlers.PhaseHandler
	Matches      *handlers.MatchHandler
	Public       *handlers.PublicHandler
	WebSocket    *handlers.WebSocketHandler
}

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	Authorizer     middleware.Authorizer
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.ConfirmSecretHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// The websocket route stays outside the timeout middleware.
	router.Get("/ws/competitions/{competitionID}", h.WebSocket.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Post("/auth/login", h.Auth.Login)

		r.Route("/public/competitions", func(r chi.Router) {
			r.Get("/", h.Public.ListActiveCompetitions)
			r.Get("/{competitionID}/standings", h.Public.Standings)
			r.Get("/{competitionID}/matches", h.Public.Matches)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(opts.JWTSecret, services.RoleAdmin))
			confirm := middleware.RequireConfirmation(opts.Authorizer)

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Teams.ListTeams)
				r.Post("/", h.Teams.CreateTeam)
				r.Route("/{teamID}", func(r chi.Router) {
					r.Get("/", h.Teams.GetTeamByID)
					r.Put("/", h.Teams.UpdateTeam)
					r.Put("/logo", h.Teams.UploadLogo)
					r.With(confirm).Delete("/", h.Teams.DeleteTeam)
				})
			})

			r.Route("/competitions", func(r chi.Router) {
				r.Get("/", h.Competitions.ListCompetitions)
				r.Post("/", h.Competitions.CreateCompetition)
				r.Route("/{competitionID}", func(r chi.Router) {
					r.Get("/", h.Competitions.GetCompetitionByID)
					r.Patch("/", h.Competitions.UpdateCompetition)
					r.With(confirm).Delete("/", h.Competitions.DeleteCompetition)

					r.Get("/teams", h.Competitions.ListPool)
					r.Post("/teams/{teamID}", h.Competitions.BindTeam)
					r.Delete("/teams/{teamID}", h.Competitions.UnbindTeam)

					r.Get("/phases", h.Competitions.ListPhases)
					r.Post("/phases", h.Competitions.CreatePhase)

					r.Get("/matches", h.Competitions.ListMatches)
					r.Post("/matches", h.Competitions.CreateMatch)

					r.Get("/standings", h.Competitions.Standings)
					r.Post("/bracket/preview", h.Phases.PreviewBracket)
				})
			})

			r.Route("/phases/{phaseID}", func(r chi.Router) {
				r.Get("/", h.Phases.GetPhaseByID)
				r.With(confirm).Delete("/", h.Phases.DeletePhase)
				r.Get("/groups", h.Phases.Groups)
				r.Get("/matches", h.Phases.ListMatches)
				r.With(confirm).Post("/fixtures", h.Phases.RegenerateFixtures)
				r.With(confirm).Post("/bracket", h.Phases.CommitBracket)
				r.With(confirm).Post("/advance", h.Phases.AdvanceRound)
			})

			r.Route("/matches/{matchID}", func(r chi.Router) {
				r.Get("/", h.Matches.GetMatchByID)
				r.Post("/start", h.Matches.StartMatch)
				r.Post("/finish", h.Matches.FinishMatch)
				r.Patch("/score", h.Matches.UpdateScore)
				r.Delete("/", h.Matches.DeleteMatch)
			})
		})
	})
}
