package routes

import (
	"log"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nutrivio/PlanAppBack/internal/config"
	"github.com/nutrivio/PlanAppBack/internal/handlers"
	"github.com/nutrivio/PlanAppBack/internal/middleware"
	"github.com/nutrivio/PlanAppBack/internal/notification"
	"github.com/nutrivio/PlanAppBack/internal/repository"
	"github.com/nutrivio/PlanAppBack/internal/services"
	intakews "github.com/nutrivio/PlanAppBack/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewIntakeSessionRepository(db)
	planRepo := repository.NewPlanRepository(db)

	var dispatcher notification.Dispatcher
	if cfg.MailConfigured() {
		dispatcher = notification.NewMailAPIService(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailFromEmail)
	}
	var reviewAlerts services.ReviewAlerter
	if cfg.TelegramConfigured() {
		alerts, err := notification.NewReviewAlertService(cfg.TelegramBotToken, cfg.TelegramReviewChatID)
		if err != nil {
			log.Printf("Telegram review alerts disabled: %v", err)
		} else {
			reviewAlerts = alerts
		}
	}

	intakeService, err := services.NewIntakeService(sessionRepo)
	if err != nil {
		return err
	}
	planService := services.NewPlanService(planRepo, sessionRepo, dispatcher, reviewAlerts)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	intakeHandler := handlers.NewIntakeHandler(intakeService)
	planHandler := handlers.NewPlanHandler(planService, userRepo)
	portalHandler := handlers.NewPortalHandler(planService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	// The questionnaire is filled in by prospective clients before they have
	// an account, so the intake surface is public.
	intake := api.Group("/v1/intake")
	intake.Post("", intakeHandler.StartIntake)
	intake.Post("/:id/answers", intakeHandler.AnswerQuestion)
	intake.Post("/:id/back", intakeHandler.GoBack)
	intake.Get("/:id", intakeHandler.GetState)

	api.Use("/v1/intake-ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	api.Get("/v1/intake-ws", websocket.New(intakews.Handler(intakeService)))

	plans := api.Group("/v1/plans", middleware.AuthRequired(cfg.JWTSecret))
	plans.Post("", planHandler.GeneratePlan)
	plans.Get("", planHandler.ListPlans)
	plans.Get("/:id", planHandler.GetPlan)
	plans.Post("/:id/approve", planHandler.ApprovePlan)
	plans.Post("/:id/send", planHandler.SendPlan)
	plans.Delete("/:id", planHandler.DeletePlan)

	// Clients reach their plan through the link in the delivery email; no
	// login involved.
	api.Get("/portal/plans/:id", portalHandler.GetPlan)

	return nil
}
