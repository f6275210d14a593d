package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kunaalsai007/Wishlist-App/config"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

const oauthStateKey = "oauth_state"

// GoogleUserInfoURL is where the signed-in profile is fetched from
var GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleUserInfo is the subset of the userinfo payload we use
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// GoogleLogin redirects to the Google consent page with a fresh state value
func GoogleLogin(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		utils.RespondError(c, utils.NotFoundError("Google sign-in is not configured"))
		return
	}

	state := uuid.NewString()
	session := sessions.Default(c)
	session.Set(oauthStateKey, state)
	if err := session.Save(); err != nil {
		utils.RespondError(c, utils.InternalError("Failed to save session", err))
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, config.GoogleOAuthConfig.AuthCodeURL(state))
}

// GoogleCallback completes the code exchange and issues an API token
func GoogleCallback(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		utils.RespondError(c, utils.NotFoundError("Google sign-in is not configured"))
		return
	}

	session := sessions.Default(c)
	expected, _ := session.Get(oauthStateKey).(string)
	session.Delete(oauthStateKey)
	_ = session.Save()

	if expected == "" || c.Query("state") != expected {
		utils.RespondError(c, utils.ValidationErr("Invalid OAuth state"))
		return
	}
	code := c.Query("code")
	if code == "" {
		utils.RespondError(c, utils.ValidationErr("No code provided"))
		return
	}

	ctx := c.Request.Context()
	token, err := config.GoogleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		utils.RespondError(c, utils.UnauthenticatedError("Google sign-in failed", err))
		return
	}

	profile, err := fetchGoogleProfile(c, config.GoogleOAuthConfig.Client(ctx, token))
	if err != nil {
		utils.RespondError(c, utils.InternalError("Failed to get user info", err))
		return
	}
	if profile.ID == "" || profile.Email == "" {
		utils.RespondError(c, utils.UnauthenticatedError("Google account has no email", nil))
		return
	}
	if !profile.VerifiedEmail {
		utils.RespondError(c, utils.UnauthenticatedError("Google account email is not verified", nil))
		return
	}

	user, err := users().FindOrCreateGoogleUser(ctx, profile.ID, profile.Email, profile.Name)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	tokenString, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.RespondError(c, utils.InternalError("Failed to generate token", err))
		return
	}

	utils.LogInfo("User %d signed in with Google", user.ID)
	if config.FrontendURL == "" {
		utils.Success(c, "Login successful", AuthResponse{Token: tokenString, User: user.Profile()})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("%s#token=%s", config.FrontendURL, url.QueryEscape(tokenString)))
}

func fetchGoogleProfile(c *gin.Context, client *http.Client) (*GoogleUserInfo, error) {
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, GoogleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned %d", resp.StatusCode)
	}
	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
