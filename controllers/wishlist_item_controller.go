package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/repository"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

// AddItemRequest represents the add item body
type AddItemRequest struct {
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes"`
}

// UpdateItemRequest is a partial update; absent fields are left unchanged
type UpdateItemRequest struct {
	Name     *string  `json:"name"`
	ImageURL *string  `json:"imageUrl"`
	Price    *float64 `json:"price"`
	Notes    *string  `json:"notes"`
}

// AddItem appends an item to a wishlist the caller can access
func AddItem(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := wishlistID(c)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.RespondError(c, utils.ValidationErr("Item name is required"))
		return
	}
	if valid, msg := utils.ValidatePrice(req.Price); !valid {
		utils.RespondError(c, utils.ValidationErr(msg))
		return
	}

	input := repository.ItemInput{
		Name:     name,
		ImageURL: strings.TrimSpace(req.ImageURL),
		Price:    req.Price,
		Notes:    req.Notes,
	}
	wishlist, err := wishlists().AddItem(c.Request.Context(), id, user.ID, input, requireAccess(user.ID))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.LogInfo("User %d added an item to wishlist %d", user.ID, id)
	utils.Created(c, "Item added", toWishlistResponse(wishlist))
}

// UpdateItem patches an item. Only the user who added it may do so.
func UpdateItem(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := wishlistID(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			utils.RespondError(c, utils.ValidationErr("Item name cannot be empty"))
			return
		}
		req.Name = &trimmed
	}
	if req.Price != nil {
		if valid, msg := utils.ValidatePrice(*req.Price); !valid {
			utils.RespondError(c, utils.ValidationErr(msg))
			return
		}
	}

	patch := repository.ItemPatch{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Price:    req.Price,
		Notes:    req.Notes,
	}
	wishlist, err := wishlists().UpdateItem(c.Request.Context(), id, c.Param("itemId"), patch, requireItemAdder(user.ID, "edit"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.Success(c, "Item updated", toWishlistResponse(wishlist))
}

// DeleteItem removes an item. Only the user who added it may do so.
func DeleteItem(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := wishlistID(c)
	if !ok {
		return
	}

	wishlist, err := wishlists().RemoveItem(c.Request.Context(), id, c.Param("itemId"), requireItemAdder(user.ID, "delete"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.Success(c, "Item deleted", toWishlistResponse(wishlist))
}
