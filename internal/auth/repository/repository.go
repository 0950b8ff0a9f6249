package repository

import authdomain "diario-backend/internal/auth/domain"

// UserRepository defines the interface for identity data access
type UserRepository interface {
	// FindByCredentials runs the exact-match lookup on (username, passphrase).
	// Returns (nil, nil) when no row matches.
	FindByCredentials(username, passphrase string) (*authdomain.User, error)

	// FindByID finds a user by its ID. Returns (nil, nil) when not found.
	FindByID(id string) (*authdomain.User, error)

	// Update persists changes to an existing user
	Update(user *authdomain.User) error

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error
}

// DeviceTokenRepository defines the interface for FCM device token operations
type DeviceTokenRepository interface {
	SaveToken(userID, token, deviceInfo string) error
	GetTokensByUserID(userID string) ([]authdomain.DeviceToken, error)
	DeleteToken(token string) error
}
