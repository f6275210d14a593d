package main

import (
	"log"

	"github.com/kunaalsai007/Wishlist-App/config"
	"github.com/kunaalsai007/Wishlist-App/routes"
	"github.com/kunaalsai007/Wishlist-App/utils"
)

func main() {
	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	// Initialize logger
	if err := utils.InitLogger(cfg.LogLevel, cfg.LogDir); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	utils.ConfigureTokens(cfg.JWTSecret)
	utils.ConfigureMail(cfg.MailConfig())

	// Initialize database
	if err := config.InitDB(cfg); err != nil {
		utils.LogError("Database initialization failed: %v", err)
		log.Fatal("Database initialization failed:", err)
	}

	config.InitGoogleOAuth(cfg)
	if config.GoogleOAuthConfig == nil {
		utils.LogInfo("Google sign-in disabled: GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set")
	}
	if !utils.MailEnabled() {
		utils.LogInfo("Invite emails disabled: SMTP_HOST not set")
	}

	router := routes.SetupRouter(cfg)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
