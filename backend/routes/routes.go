package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"vedaverse/backend/config"
	"vedaverse/backend/controllers"
	"vedaverse/backend/metrics"
	"vedaverse/backend/middleware"
	"vedaverse/backend/progress"
)

func SetupRoutes(app *fiber.App, store *progress.Store, cfg *config.Config, logger *zap.Logger) {
	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.RequestIDHeader,
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	// Progress routes
	progressController := controllers.NewProgressController(store, logger)
	api.Get("/progress", progressController.GetProgress)
	api.Get("/progress/overview", progressController.GetProgressOverview)
	api.Patch("/progress", progressController.UpdateProgress)
	api.Delete("/progress", progressController.ResetProgress)
	api.Post("/progress/score", progressController.AddScore)
	api.Post("/progress/streak", progressController.UpdateStreak)
	api.Post("/progress/achievements", progressController.AddAchievement)

	// Overview routes
	overviewController := controllers.NewOverviewController(store)
	api.Get("/overview/search", overviewController.SearchCatalog)

	// Quiz routes
	quizController := controllers.NewQuizController(store, logger)
	quizzes := api.Group("/quizzes")
	quizzes.Get("/", quizController.GetQuizzes)
	quizzes.Post("/:category/answers", quizController.SubmitAnswer)
	quizzes.Post("/:category/complete", quizController.CompleteQuiz)

	// Roadmap routes
	roadmapController := controllers.NewRoadmapController(store, cfg, logger)
	roadmaps := api.Group("/roadmaps")
	roadmaps.Get("/", roadmapController.GetRoadmaps)
	roadmaps.Post("/:id/start", roadmapController.StartRoadmap)
	roadmaps.Put("/:id/progress", roadmapController.UpdateRoadmapProgress)
	api.Post("/lessons/:id/complete", roadmapController.CompleteLesson)

	// Library routes
	libraryController := controllers.NewLibraryController(store, logger)
	texts := api.Group("/texts")
	texts.Get("/", libraryController.GetTexts)
	texts.Post("/:id/read", libraryController.ReadText)
	texts.Put("/:id/bookmark", libraryController.AddBookmark)
	texts.Delete("/:id/bookmark", libraryController.RemoveBookmark)
	texts.Get("/:id/note", libraryController.GetNote)
	texts.Put("/:id/note", libraryController.SaveNote)
}
