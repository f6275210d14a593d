package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

// CreateWishlistRequest represents the create wishlist body
type CreateWishlistRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ListWishlists returns every wishlist the user created or collaborates on
func ListWishlists(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	lists, err := wishlists().ListFor(c.Request.Context(), user.ID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Wishlists retrieved", toWishlistResponses(lists))
}

// GetWishlist returns one wishlist to a creator or collaborator
func GetWishlist(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := wishlistID(c)
	if !ok {
		return
	}

	wishlist, err := wishlists().GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if err := requireAccess(user.ID)(wishlist); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Wishlist retrieved", toWishlistResponse(wishlist))
}

// CreateWishlist creates a wishlist owned by the caller
func CreateWishlist(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		utils.RespondError(c, utils.ValidationErr("Title is required"))
		return
	}

	wishlist, err := wishlists().Create(c.Request.Context(), user.ID, title, strings.TrimSpace(req.Description))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.LogInfo("User %d created wishlist %d", user.ID, wishlist.ID)
	utils.Created(c, "Wishlist created", toWishlistResponse(wishlist))
}

// DeleteWishlist removes a wishlist and everything in it. Creator only.
func DeleteWishlist(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := wishlistID(c)
	if !ok {
		return
	}

	if err := wishlists().Delete(c.Request.Context(), id, requireDelete(user.ID)); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.LogInfo("User %d deleted wishlist %d", user.ID, id)
	utils.Success(c, "Wishlist deleted successfully", nil)
}
