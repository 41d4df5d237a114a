package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/partymatcher/party-matchmaker-backend/config"
	"github.com/partymatcher/party-matchmaker-backend/internal/event"
	"github.com/partymatcher/party-matchmaker-backend/internal/guest"
	"github.com/partymatcher/party-matchmaker-backend/internal/matching"
	"github.com/partymatcher/party-matchmaker-backend/internal/question"
	"github.com/partymatcher/party-matchmaker-backend/internal/response"
	"github.com/partymatcher/party-matchmaker-backend/middleware"
)

// RegisterRoutes wires repositories, services and handlers and mounts
// the /events surface.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, db *gorm.DB, rdb *redis.Client) {
	eventRepo := event.NewRepository(db)
	eventSvc := event.NewService(eventRepo, cfg.EventCodeLength, cfg.EventCodeRetries)
	eventHandler := event.NewHandler(eventSvc)

	guestRepo := guest.NewRepository(db)
	guestSvc := guest.NewService(guestRepo, eventSvc)
	guestHandler := guest.NewHandler(guestSvc)

	questionRepo := question.NewRepository(db)
	questionSvc := question.NewService(questionRepo, eventSvc)
	questionHandler := question.NewHandler(questionSvc)

	responseRepo := response.NewRepository(db)
	responseSvc := response.NewService(responseRepo, guestRepo, eventSvc)
	responseHandler := response.NewHandler(responseSvc)

	matchRepo := matching.NewRepository(db)
	matchSvc := matching.NewService(eventSvc, guestRepo, responseRepo, matchRepo, matching.NewRedisLock(rdb))
	matchHandler := matching.NewHandler(matchSvc)

	auth := middleware.Auth(cfg)

	events := r.Group("/events")
	{
		// Event creation is soft-authenticated: a bad token makes the
		// event anonymous instead of failing the request.
		events.POST("", middleware.OptionalAuth(cfg), eventHandler.CreateEvent)
		events.GET("/my-events", auth, eventHandler.MyEvents)
		events.GET("/:code", eventHandler.GetEvent)
		events.PUT("/:code", auth, eventHandler.UpdateEvent)
		events.DELETE("/:code", auth, eventHandler.DeleteEvent)
		events.GET("/:code/status", eventHandler.Status)

		events.POST("/:code/join", guestHandler.Join)
		events.GET("/:code/guests", guestHandler.List)

		events.GET("/:code/questions", questionHandler.List)
		events.POST("/:code/questions", questionHandler.Create)
		events.PUT("/:code/questions/:question_id", auth, questionHandler.Update)
		events.DELETE("/:code/questions/:question_id", auth, questionHandler.Delete)

		events.POST("/:code/responses", responseHandler.Submit)
		events.GET("/:code/responses/:guest_id", responseHandler.ByGuest)

		events.POST("/:code/match", auth, matchHandler.RunMatching)
		events.GET("/:code/matches", auth, matchHandler.AllMatches)
		events.POST("/:code/reveal", auth, matchHandler.Reveal)
		events.GET("/:code/my-match/:guest_id", matchHandler.MyMatch)
		events.DELETE("/:code/matches/:match_id", auth, matchHandler.DeleteMatch)
		events.POST("/:code/matches/manual", auth, matchHandler.ManualMatch)
	}
}
