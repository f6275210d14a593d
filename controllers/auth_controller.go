package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/models"
	"github.com/kunaalsai007/Wishlist-App/repository"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

// RegisterRequest represents the signup request body
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser handles signup
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogDebug("Signup rejected - invalid body: %v", err)
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = utils.NormalizeEmail(req.Email)

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.RespondError(c, utils.ValidationErr(msg))
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.RespondError(c, utils.ValidationErr(msg))
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.RespondError(c, utils.ValidationErr(msg))
		return
	}

	user, err := users().Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			utils.LogInfo("Signup rejected - duplicate identity for %s", req.Email)
		}
		respondStoreError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.RespondError(c, utils.InternalError("Failed to generate token", err))
		return
	}

	utils.LogInfo("User %d registered", user.ID)
	utils.Created(c, "User created successfully", authResponse(token, user))
}

// LoginUser handles user login. Unknown email and wrong password produce
// the same response.
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	if !utils.Required(req.Email) || req.Password == "" {
		utils.RespondError(c, utils.ValidationErr("Email and password are required"))
		return
	}

	repo := users()
	user, err := repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		utils.RespondError(c, utils.InternalError("Failed to load user", err))
		return
	}
	if err != nil || !repo.VerifyPassword(user, req.Password) {
		utils.LogInfo("Login failed for %s", utils.NormalizeEmail(req.Email))
		utils.RespondError(c, utils.UnauthenticatedError("Invalid credentials", nil))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.RespondError(c, utils.InternalError("Failed to generate token", err))
		return
	}

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, "Login successful", authResponse(token, user))
}

func authResponse(token string, user *models.User) AuthResponse {
	return AuthResponse{Token: token, User: user.Profile()}
}
