package routes

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/config"
	"github.com/kunaalsai007/Wishlist-App/controllers"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

const sessionName = "wishlist_session"

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())
	router.Use(utils.MetricsMiddleware())

	router.GET("/health", controllers.Health)
	router.GET("/metrics", utils.MetricsHandler())

	// Session cookie only carries the OAuth state between login and callback
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 10,
		Path:     "/auth/google",
		Secure:   cfg.Env == "production",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	initAuthRoutes(router, sessions.Sessions(sessionName, store))
	initUserRoutes(router)
	initWishlistRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, utils.NotFoundError("Route not found"))
	})

	return router
}
