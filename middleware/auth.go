package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/config"
	"github.com/kunaalsai007/Wishlist-App/models"
	"github.com/kunaalsai007/Wishlist-App/repository"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

// AuthMiddleware resolves the bearer token to a user. A missing token is
// rejected with 401, a token that does not verify with 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.LogDebug("Missing bearer token on %s %s", c.Request.Method, c.Request.URL.Path)
			utils.AbortWithError(c, utils.UnauthenticatedError("Access token required", nil))
			return
		}

		userID, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.LogDebug("Invalid token: %v", err)
			utils.AbortWithError(c, invalidToken(err))
			return
		}

		user, err := repository.NewUserRepository(config.DB).FindByID(c.Request.Context(), userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.LogError("Token refers to unknown user %d", userID)
			utils.AbortWithError(c, invalidToken(err))
			return
		}
		if err != nil {
			utils.AbortWithError(c, utils.InternalError("Failed to load user", err))
			return
		}

		c.Set(utils.UserContextKey, *user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(utils.UserContextKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func invalidToken(err error) *utils.AppError {
	return utils.NewAppError(http.StatusForbidden, utils.KindUnauthenticated, "Invalid token", err)
}
