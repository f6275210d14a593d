package utils

// Application constants
const (
	// Application name
	AppName = "Wishlist"

	// Default port
	DefaultPort = "8080"

	// Default database host
	DefaultDBHost = "localhost"

	// Default database port
	DefaultDBPort = "5432"

	// Default database name
	DefaultDBName = "shared_wishlist"

	// Default database user
	DefaultDBUser = "postgres"

	// SearchLimit caps user search results
	SearchLimit = 10

	// UserContextKey is the gin context key holding the authenticated user
	UserContextKey = "user"
)
