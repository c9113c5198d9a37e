package routes

import (
	"github.com/M1nhDuke/PB-075/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	squadHandler *handlers.SquadHandler,
	trainingHandler *handlers.TrainingHandler,
	statHandler *handlers.StatHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/players", func(r chi.Router) {
		r.Post("/", playerHandler.CreatePlayer)
		r.Get("/", playerHandler.ListPlayers)
		r.Get("/{playerID}", playerHandler.GetPlayerByID)
		r.Put("/{playerID}", playerHandler.UpdatePlayer)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Post("/", matchHandler.ScheduleMatch)
		r.Get("/upcoming", matchHandler.ListUpcomingMatches)

		r.Route("/{matchID}", func(r chi.Router) {
			r.Get("/", matchHandler.GetMatchByID)
			r.Put("/result", matchHandler.RecordMatchResult)

			r.Post("/squad", squadHandler.SetSquadPlan)
			r.Get("/squad", squadHandler.GetSquadPlan)

			r.Put("/training", trainingHandler.SetTrainingPlan)
			r.Get("/training", trainingHandler.GetTrainingPlan)

			r.Post("/stats", statHandler.AddMatchStatistics)
			r.Get("/stats", statHandler.GetMatchStatistics)
		})
	})
}
