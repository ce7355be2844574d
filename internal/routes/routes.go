package routes

import (
	"github.com/Jenicoon/fitcoach-backend/internal/ai"
	"github.com/Jenicoon/fitcoach-backend/internal/config"
	"github.com/Jenicoon/fitcoach-backend/internal/handlers"
	"github.com/Jenicoon/fitcoach-backend/internal/middleware"
	"github.com/Jenicoon/fitcoach-backend/internal/repository"
	"github.com/Jenicoon/fitcoach-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps bundles the externally-constructed collaborators the route tree
// needs. The Gemini client and video search service are injected rather
// than built here so tests and main can swap them.
type Deps struct {
	DB     *pgxpool.Pool
	AI     *ai.Client
	Videos *services.VideoSearchService
}

func RegisterRoutes(app *fiber.App, cfg *config.Config, deps Deps) {
	planRepo := repository.NewPlanRepository(deps.DB)
	progressRepo := repository.NewProgressRepository(deps.DB)
	workoutLogRepo := repository.NewWorkoutLogRepository(deps.DB)
	reservationRepo := repository.NewReservationRepository(deps.DB)

	planService := services.NewPlanService(deps.AI, planRepo)
	statsService := services.NewStatsService(progressRepo, workoutLogRepo)
	chatService := services.NewChatService(deps.AI, planRepo, statsService, reservationRepo, deps.Videos)

	coachHandler := handlers.NewCoachHandler(planService, chatService, statsService, deps.Videos)
	memberDataHandler := handlers.NewMemberDataHandler(reservationRepo, progressRepo, workoutLogRepo)

	api := app.Group("/api")
	if cfg.JWTSecret != "" {
		api.Use(middleware.MemberIdentity(cfg.JWTSecret))
	}

	coach := api.Group("/coach")
	coach.Post("/generate-plan", coachHandler.GeneratePlan)
	coach.Post("/chat", coachHandler.Chat)
	coach.Get("/members/:memberId/stats", coachHandler.MemberStats)
	coach.Get("/exercises/videos", coachHandler.SearchVideos)

	members := api.Group("/members/:memberId")
	members.Post("/reservations", memberDataHandler.CreateReservation)
	members.Get("/reservations", memberDataHandler.ListReservations)
	members.Post("/progress", memberDataHandler.CreateProgressEntry)
	members.Get("/progress", memberDataHandler.ListProgressEntries)
	members.Post("/workouts", memberDataHandler.CreateWorkoutLog)
	members.Get("/workouts", memberDataHandler.ListWorkoutLogs)
}
