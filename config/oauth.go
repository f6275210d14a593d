package config

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleOAuthConfig is nil unless Google sign-in is configured
var GoogleOAuthConfig *oauth2.Config

// FrontendURL receives the token after a Google sign-in. When empty the
// callback answers with JSON instead of redirecting.
var FrontendURL string

// InitGoogleOAuth builds the OAuth client config from the app config
func InitGoogleOAuth(config *Config) {
	FrontendURL = config.FrontendURL
	if config.GoogleClientID == "" || config.GoogleClientSecret == "" {
		GoogleOAuthConfig = nil
		return
	}
	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     config.GoogleClientID,
		ClientSecret: config.GoogleClientSecret,
		RedirectURL:  config.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}
