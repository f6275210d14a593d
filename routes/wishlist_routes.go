package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/controllers"
	"github.com/kunaalsai007/Wishlist-App/middleware"
)

// initWishlistRoutes registers the wishlist routes. All of them require a token.
func initWishlistRoutes(router *gin.Engine) {
	wishlists := router.Group("/wishlists")
	wishlists.Use(middleware.AuthMiddleware())
	{
		wishlists.GET("", controllers.ListWishlists)
		wishlists.POST("", controllers.CreateWishlist)
		wishlists.GET("/:id", controllers.GetWishlist)
		wishlists.DELETE("/:id", controllers.DeleteWishlist)

		wishlists.POST("/:id/items", controllers.AddItem)
		wishlists.PUT("/:id/items/:itemId", controllers.UpdateItem)
		wishlists.DELETE("/:id/items/:itemId", controllers.DeleteItem)

		wishlists.POST("/:id/invite", controllers.InviteCollaborator)
		wishlists.GET("/:id/export", controllers.ExportWishlist)
	}
}
