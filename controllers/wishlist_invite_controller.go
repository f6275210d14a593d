package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

// InviteRequest represents the invite body
type InviteRequest struct {
	Email string `json:"email"`
}

// InviteCollaborator adds an existing user, found by email, to a wishlist.
// Creator only.
func InviteCollaborator(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := wishlistID(c)
	if !ok {
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	if !utils.Required(req.Email) {
		utils.RespondError(c, utils.ValidationErr("Email is required"))
		return
	}

	wishlist, invitee, err := wishlists().AddCollaborator(c.Request.Context(), id, req.Email, requireInvite(user.ID))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.LogInfo("User %d invited user %d to wishlist %d", user.ID, invitee.ID, id)
	if err := utils.SendInviteEmail(invitee.Email, user.Username, wishlist.Title); err != nil {
		utils.LogError("Invite notice to user %d failed: %v", invitee.ID, err)
	}

	utils.Success(c, "User invited successfully", toWishlistResponse(wishlist))
}
