package app

import (
	"qudurat_backend/docs"
	"qudurat_backend/internal/config"
	"qudurat_backend/internal/middleware"
	"qudurat_backend/internal/model"
	"qudurat_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerParentRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register/student", c.auth.RegisterStudent)
		public.POST("/register/parent", c.auth.RegisterParent)
		public.POST("/login", c.auth.Login)
		public.POST("/otp/request", c.auth.RequestOTP)
		public.POST("/otp/verify", c.auth.VerifyOTP)
		public.GET("/plans", c.subscription.ListPlans)
	}
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/profile", c.auth.GetProfile)
	group.PUT("/profile", c.user.UpdateProfile)
	group.POST("/profile/avatar", c.user.UploadAvatar)

	placement := group.Group("/placement")
	{
		placement.POST("/start", c.placement.Start)
		placement.POST("/answer", c.placement.Answer)
		placement.DELETE("/session", c.placement.Abandon)
		placement.GET("/result", c.placement.GetResult)
	}

	subscriptions := group.Group("/subscriptions")
	{
		subscriptions.GET("", c.subscription.ListMine)
		subscriptions.POST("", c.subscription.Subscribe)
		subscriptions.GET("/active", c.subscription.Active)
		subscriptions.POST("/:id/verify", c.subscription.VerifyPayment)
	}

	tickets := group.Group("/tickets")
	{
		tickets.GET("", c.ticket.ListMine)
		tickets.POST("", c.ticket.Create)
		tickets.POST("/attachment", c.ticket.UploadAttachment)
		tickets.GET("/:id", c.ticket.Detail)
		tickets.POST("/:id/replies", c.ticket.Reply)
	}

	group.GET("/points/balance", c.points.Balance)
	group.GET("/points/transactions", c.points.Transactions)
	group.GET("/rewards", c.points.ListRewards)
	group.POST("/rewards/:id/redeem", c.points.Redeem)

	notifications := group.Group("/notifications")
	{
		notifications.GET("", c.notification.List)
		notifications.GET("/unread", c.notification.UnreadCount)
		notifications.POST("/:id/read", c.notification.MarkRead)
		notifications.POST("/read-all", c.notification.MarkAllRead)
	}
}

func (a *App) registerParentRoutes(group *gin.RouterGroup, c *controllers) {
	parent := group.Group("/parent")
	parent.Use(middleware.RoleMiddleware(model.Parent))
	{
		parent.GET("/children", c.user.Children)
		parent.POST("/children/:id/approve", c.user.ApproveStudent)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.Admin))
	{
		questions := admin.Group("/placement/questions")
		{
			questions.GET("", c.placement.ListQuestions)
			questions.POST("", c.placement.CreateQuestion)
			questions.POST("/image", c.placement.UploadQuestionImage)
			questions.PUT("/:id", c.placement.UpdateQuestion)
			questions.DELETE("/:id", c.placement.DeleteQuestion)
		}

		admin.GET("/placement/results", c.placement.ListResults)

		admin.GET("/tickets", c.ticket.AdminList)
		admin.POST("/tickets/:id/close", c.ticket.Close)
	}
}
