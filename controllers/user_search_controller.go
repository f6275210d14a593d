package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

// SearchUsers finds up to ten other users by username or email fragment
func SearchUsers(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	found, err := users().Search(c.Request.Context(), c.Query("q"), user.ID, utils.SearchLimit)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Users retrieved", toProfiles(found))
}
