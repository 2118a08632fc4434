package api

import (
	authHandler "itda-server/internal/auth/handler"
	chatHandler "itda-server/internal/chat/handler"
	insightsHandler "itda-server/internal/insights/handler"
	matchesHandler "itda-server/internal/matches/handler"
	notificationsHandler "itda-server/internal/notifications/handler"
	"itda-server/internal/ratelimit"
	"itda-server/internal/store"
	swipeHandler "itda-server/internal/swipe/handler"
	waitlistHandler "itda-server/internal/waitlist/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Limits are the per-route rate limiters; nil limiters let everything through
type Limits struct {
	WaitlistSignup *ratelimit.Limiter
	ChatSend       *ratelimit.Limiter
}

type API struct {
	router               *gin.RouterGroup
	authHandler          authHandler.Handler
	swipeHandler         swipeHandler.Handler
	insightsHandler      insightsHandler.Handler
	matchesHandler       matchesHandler.Handler
	chatHandler          chatHandler.Handler
	notificationsHandler notificationsHandler.Handler
	waitlistHandler      waitlistHandler.Handler
	limits               Limits
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	swipeHandler swipeHandler.Handler,
	insightsHandler insightsHandler.Handler,
	matchesHandler matchesHandler.Handler,
	chatHandler chatHandler.Handler,
	notificationsHandler notificationsHandler.Handler,
	waitlistHandler waitlistHandler.Handler,
	limits Limits,
) API {
	return API{
		router:               router,
		authHandler:          authHandler,
		swipeHandler:         swipeHandler,
		insightsHandler:      insightsHandler,
		matchesHandler:       matchesHandler,
		chatHandler:          chatHandler,
		notificationsHandler: notificationsHandler,
		waitlistHandler:      waitlistHandler,
		limits:               limits,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	// Public
	apiGroup.POST("/waitlist", a.limits.WaitlistSignup.Middleware(ratelimit.ByClientIP), a.waitlistHandler.HandleSignup)

	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.GET("/me", a.authHandler.GetUserInfo)

		influencerOnly := a.authHandler.RequireUserType(store.UserTypeInfluencer)
		advertiserOnly := a.authHandler.RequireUserType(store.UserTypeAdvertiser)
		adminOnly := a.authHandler.RequireUserType(store.UserTypeAdmin)

		swipeGroup := protectedGroup.Group("/swipes", influencerOnly)
		{
			swipeGroup.GET("/limit", a.swipeHandler.HandleGetSwipeLimit)
			swipeGroup.GET("/queue", a.swipeHandler.HandleGetQueue)
			swipeGroup.POST("", a.swipeHandler.HandleRecordSwipe)
		}

		aiGroup := protectedGroup.Group("/ai")
		{
			aiGroup.POST("/price-prediction", a.insightsHandler.HandlePricePrediction)
			aiGroup.GET("/match-score/:campaign_id", influencerOnly, a.insightsHandler.HandleMatchScore)
		}

		protectedGroup.GET("/matches", influencerOnly, a.matchesHandler.HandleListMyMatches)
		protectedGroup.POST("/matches/:match_id/review", advertiserOnly, a.matchesHandler.HandleReviewMatch)
		protectedGroup.GET("/campaigns/:campaign_id/matches", advertiserOnly, a.matchesHandler.HandleListCampaignMatches)

		chatGroup := protectedGroup.Group("/chat/rooms")
		{
			chatGroup.GET("", a.chatHandler.HandleListRooms)
			chatGroup.GET("/:room_id/messages", a.chatHandler.HandleListMessages)
			chatGroup.POST("/:room_id/messages", a.limits.ChatSend.Middleware(ratelimit.ByUser), a.chatHandler.HandleSendMessage)
			chatGroup.POST("/:room_id/read", a.chatHandler.HandleMarkRead)
		}

		notificationGroup := protectedGroup.Group("/notifications")
		{
			notificationGroup.GET("", a.notificationsHandler.HandleListNotifications)
			notificationGroup.GET("/unread-count", a.notificationsHandler.HandleGetUnreadCount)
			notificationGroup.POST("/read-all", a.notificationsHandler.HandleMarkAllAsRead)
			notificationGroup.POST("/:notification_id/read", a.notificationsHandler.HandleMarkAsRead)
			notificationGroup.POST("/:notification_id/dismiss", a.notificationsHandler.HandleDismiss)
		}

		protectedGroup.POST("/push/subscriptions", a.notificationsHandler.HandleSubscribe)
		protectedGroup.DELETE("/push/subscriptions", a.notificationsHandler.HandleUnsubscribe)

		adminGroup := protectedGroup.Group("/admin", adminOnly)
		{
			adminGroup.GET("/waitlist", a.waitlistHandler.HandleListEntries)
			adminGroup.GET("/waitlist/export", a.waitlistHandler.HandleExportEntries)
		}
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
