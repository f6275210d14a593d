package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/config"
	"github.com/kunaalsai007/Wishlist-App/middleware"
	"github.com/kunaalsai007/Wishlist-App/models"
	"github.com/kunaalsai007/Wishlist-App/repository"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

func users() *repository.UserRepository {
	return repository.NewUserRepository(config.DB)
}

func wishlists() *repository.WishlistRepository {
	return repository.NewWishlistRepository(config.DB)
}

// actor returns the authenticated user or writes a 401
func actor(c *gin.Context) (models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.UnauthenticatedError("Access token required", nil))
	}
	return user, ok
}

// wishlistID parses the :id path parameter. Ids that cannot exist are
// reported the same way as ids that do not.
func wishlistID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, utils.NotFoundError("Wishlist not found"))
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps repository sentinels onto the API error kinds
func respondStoreError(c *gin.Context, err error) {
	utils.RespondError(c, translateStoreError(err))
}

func translateStoreError(err error) error {
	switch {
	case errors.Is(err, repository.ErrWishlistNotFound):
		return utils.NotFoundError("Wishlist not found")
	case errors.Is(err, repository.ErrItemNotFound):
		return utils.NotFoundError("Item not found")
	case errors.Is(err, repository.ErrUserNotFound):
		return utils.NotFoundError("User not found")
	case errors.Is(err, repository.ErrAlreadyCollaborator):
		return utils.ConflictError("User is already a collaborator")
	case errors.Is(err, repository.ErrDuplicateIdentity):
		return utils.ConflictError("User already exists")
	}
	return err
}
