package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vietanh2810/youthopia-api/docs"
	v1 "github.com/vietanh2810/youthopia-api/internal/api/handler/v1"
	"github.com/vietanh2810/youthopia-api/internal/api/middleware"
	"github.com/vietanh2810/youthopia-api/internal/config"
	"github.com/vietanh2810/youthopia-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	ledger *service.LedgerService
	hub    *v1.NotificationHub
	photos v1.PhotoUploader
}

func NewServer(conf *config.AppConfig, ledger *service.LedgerService, hub *v1.NotificationHub, photos v1.PhotoUploader) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		ledger: ledger,
		hub:    hub,
		photos: photos,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler()
	passportHandler := s.initPassportHandler()
	leaderboardHandler := s.initLeaderboardHandler()
	adminHandler := s.initAdminHandler()
	s.MountHandlers(authHandler, passportHandler, leaderboardHandler, adminHandler)

	return s
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	return v1.NewAuthHandler(s.Config.API, s.ledger, s.photos)
}

func (s *Server) initPassportHandler() *v1.PassportHandler {
	return v1.NewPassportHandler(s.ledger, s.ledger.Notifier())
}

func (s *Server) initLeaderboardHandler() *v1.LeaderboardHandler {
	return v1.NewLeaderboardHandler(s.ledger)
}

func (s *Server) initAdminHandler() *v1.AdminHandler {
	return v1.NewAdminHandler(s.ledger)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, passportHandler *v1.PassportHandler, leaderboardHandler *v1.LeaderboardHandler, adminHandler *v1.AdminHandler) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, s.ledger)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/register", authHandler.HandleRegister)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.POST("/auth/logout", authHandler.HandleLogout)
		public.GET("/auth/exists/:contact", authHandler.HandleUserExists)
		public.POST("/auth/reset-password", authHandler.HandleResetPassword)
		public.POST("/admin/login", authHandler.HandleAdminLogin)
		public.POST("/admin/logout", authHandler.HandleAdminLogout)
		public.GET("/events", v1.HandleGetEvents)
	}

	users := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		users.GET("/me", passportHandler.HandleGetMe)
		users.GET("/me/events", passportHandler.HandleGetMyEvents)
		users.GET("/me/summary", passportHandler.HandleGetSummary)
		users.POST("/me/events/:eventID/register", passportHandler.HandleRegisterForEvent)
		users.POST("/me/events/:eventID/complete", passportHandler.HandleCompleteEvent)
		users.POST("/me/events/:eventID/feedback", passportHandler.HandleSubmitFeedback)
		users.POST("/me/spin", passportHandler.HandleSpin)
		users.GET("/me/notifications", passportHandler.HandleGetNotifications)
		users.DELETE("/me/notifications", passportHandler.HandleClearNotification)
		users.DELETE("/me/achievements/recent", passportHandler.HandleClearAchievements)

		users.GET("/leaderboard", leaderboardHandler.HandleGetLeaderboard)
		users.GET("/leaderboard/teams", leaderboardHandler.HandleGetTeamLeaderboard)
		users.GET("/leaderboard/events/:eventID", leaderboardHandler.HandleGetEventLeaderboard)
		users.GET("/leaderboard/me", leaderboardHandler.HandleGetMyRank)

		users.GET("/ws", s.hub.HandleWebSocket)
	}

	admin := s.Router.Group(basePath+"/admin", authenticator.VerifyAdminJWT())
	{
		admin.GET("/dashboard", adminHandler.HandleGetDashboard)
		admin.GET("/users", adminHandler.HandleGetUsers)
		admin.PATCH("/users/:contact/status", adminHandler.HandleUpdateUserStatus)
		admin.GET("/feedback", adminHandler.HandleGetFeedback)
		admin.GET("/events", adminHandler.HandleGetEvents)
		admin.POST("/qr/generate", adminHandler.HandleGenerateQR)
		admin.POST("/qr/validate", adminHandler.HandleValidateQR)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Youthopia Passport API"
	docs.SwaggerInfo.Description = "Activity passport: event registration, QR completion, VISA points, achievements and leaderboards."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
