package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/controllers"
	"github.com/kunaalsai007/Wishlist-App/middleware"
)

// initAuthRoutes registers signup, login and Google sign-in
func initAuthRoutes(router *gin.Engine, session gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", controllers.RegisterUser)
		auth.POST("/login", controllers.LoginUser)

		google := auth.Group("/google", session)
		google.GET("/login", controllers.GoogleLogin)
		google.GET("/callback", controllers.GoogleCallback)
	}
}

// initUserRoutes registers the authenticated user lookup routes
func initUserRoutes(router *gin.Engine) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/search", controllers.SearchUsers)
	}
}
