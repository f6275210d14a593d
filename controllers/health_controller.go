package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

// Health reports that the server is up
func Health(c *gin.Context) {
	utils.Success(c, "Server is running!", nil)
}
