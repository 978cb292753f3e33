package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"fitswitch/internal/auth"
	"fitswitch/internal/backend"
	"fitswitch/internal/catalog"
	"fitswitch/internal/config"
	"fitswitch/internal/earnings"
	"fitswitch/internal/membership"
	"fitswitch/internal/session"
	"fitswitch/internal/user"
	"fitswitch/internal/visitcache"
	"fitswitch/internal/wallet"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(cfg *config.Config, client *backend.Client, rdb *redis.Client, visitDB *sqlx.DB) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	catalogService := catalog.NewService(client, rdb, cfg.CatalogCacheTTL)
	visitStore := visitcache.NewStore(visitDB)

	membershipCtrl := session.NewController(session.KindMembership, client.MembershipSessions(), visitStore)
	facilityCtrl := session.NewController(session.KindFacility, client.FacilitySessions(), visitStore)
	resolver := session.NewResolver(catalogService)

	userHandler := user.NewHandler(client)
	catalogHandler := catalog.NewHandler(catalogService, client)
	sessionHandler := session.NewHandler(membershipCtrl, facilityCtrl, resolver, client)
	walletHandler := wallet.NewHandler(client)
	membershipHandler := membership.NewHandler(client)
	earningsHandler := earnings.NewHandler(client)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/verify-otp", userHandler.VerifyOtp)
		public.POST("/resend-otp", userHandler.ResendOtp)
		public.POST("/login", userHandler.Login)
	}

	// Gym browsing is open: prospective members compare gyms before they
	// have an account. The backend client sends no Authorization header
	// when the token is empty.
	browse := router.Group("/gyms")
	{
		browse.GET("", catalogHandler.ListGyms)
		browse.GET("/:gymID", catalogHandler.GetGym)
		browse.GET("/:gymID/plans", catalogHandler.ListPlans)
		browse.GET("/:gymID/facilities", catalogHandler.ListFacilities)
	}

	authMiddleware := auth.Middleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/auth/profile", userHandler.Profile)
		protected.GET("/dashboard/stats", userHandler.DashboardStats)
		protected.GET("/digital-card", userHandler.DigitalCard)

		protected.GET("/sessions/membership/state", sessionHandler.MembershipState)
		protected.POST("/sessions/membership/check-in", sessionHandler.MembershipCheckIn)
		protected.POST("/sessions/membership/check-out", sessionHandler.MembershipCheckOut)
		protected.GET("/sessions/membership/active", sessionHandler.MembershipActive)
		protected.GET("/sessions/facility/state", sessionHandler.FacilityState)
		protected.POST("/sessions/facility/check-in", sessionHandler.FacilityCheckIn)
		protected.POST("/sessions/facility/check-out", sessionHandler.FacilityCheckOut)
		protected.GET("/sessions/facility/active", sessionHandler.FacilityActive)
		protected.GET("/sessions/membership/history", sessionHandler.MembershipHistory)
		protected.GET("/sessions/facility/history", sessionHandler.FacilityHistory)

		protected.GET("/wallet/balance", walletHandler.Balance)
		protected.POST("/wallet/add-money", walletHandler.AddMoney)
		protected.POST("/wallet/use-facility", walletHandler.UseFacility)
		protected.GET("/wallet/transactions", walletHandler.Transactions)

		protected.GET("/memberships", membershipHandler.List)
		protected.POST("/memberships", membershipHandler.Purchase)
		protected.GET("/facility-subscriptions", membershipHandler.ListFacilitySubscriptions)
		protected.POST("/facility-subscriptions", membershipHandler.SubscribeFacility)
		protected.POST("/memberships/switch", membershipHandler.Switch)
		protected.GET("/memberships/:membershipID/refund-calculation", membershipHandler.RefundCalculation)
		protected.POST("/memberships/unsubscribe", membershipHandler.Unsubscribe)
		protected.GET("/unsubscribe-requests", membershipHandler.ListUnsubscribeRequests)
	}

	ownerMiddleware := auth.RequireRole(auth.RoleOwner)
	owner := router.Group("/owner")
	owner.Use(authMiddleware, ownerMiddleware)
	{
		owner.GET("/gyms", catalogHandler.ListOwnerGyms)
		owner.POST("/gyms", catalogHandler.CreateGym)
		owner.PUT("/gyms/:gymID", catalogHandler.UpdateGym)
		owner.POST("/gyms/:gymID/plans", catalogHandler.CreatePlan)
		owner.PUT("/gyms/:gymID/plans/:planID", catalogHandler.UpdatePlan)
		owner.POST("/gyms/:gymID/facilities", catalogHandler.CreateFacility)
		owner.PUT("/gyms/:gymID/facilities/:facilityID", catalogHandler.UpdateFacility)

		owner.GET("/gyms/:gymID/users", membershipHandler.ListGymMembers)
		owner.GET("/gyms/:gymID/users/:userID/stats", membershipHandler.GymMemberStats)

		owner.GET("/unsubscribe-requests", membershipHandler.ListOwnerUnsubscribeRequests)
		owner.POST("/unsubscribe-requests/:requestID/approve", membershipHandler.ApproveUnsubscribe)
		owner.POST("/unsubscribe-requests/:requestID/reject", membershipHandler.RejectUnsubscribe)

		owner.GET("/earnings", earningsHandler.List)
		owner.GET("/earnings/total", earningsHandler.Total)
		owner.GET("/earnings/gym/:gymID", earningsHandler.ListByGym)
		owner.GET("/earnings/gym/:gymID/total", earningsHandler.TotalByGym)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
