package usecase

import (
	authdomain "diario-backend/internal/auth/domain"
	authdto "diario-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for session business logic
type AuthUsecase interface {
	// Login validates a username/passphrase pair against the identity table
	// and establishes a session on success
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// RefreshToken re-establishes a session from a stored refresh token
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)

	// Logout destroys the stored refresh token
	Logout(refreshToken string) error

	// ValidateToken restores the identity behind an access token. A
	// malformed or expired token simply means "not logged in".
	ValidateToken(tokenString string) (*authdomain.User, error)

	// UpdateAvatar changes the identity's profile photo URL
	UpdateAvatar(userID, avatarURL string) (*authdomain.User, error)

	// RegisterDevice stores an FCM device token for reminder pushes
	RegisterDevice(userID, token, deviceInfo string) error

	// UnregisterDevice removes a stored device token
	UnregisterDevice(token string) error
}
