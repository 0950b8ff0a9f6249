package delivery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authdomain "diario-backend/internal/auth/domain"
	authdto "diario-backend/internal/auth/dto"
	"diario-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase implements usecase.AuthUsecase for handler tests
type fakeAuthUsecase struct {
	loginResp *authdto.TokenResponse
	loginErr  error

	validUser *authdomain.User
}

func (f *fakeAuthUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthUsecase) RefreshToken(refreshToken string) (*authdto.TokenResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthUsecase) Logout(refreshToken string) error { return nil }

func (f *fakeAuthUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	if f.validUser != nil && tokenString == "good-token" {
		return f.validUser, nil
	}
	return nil, usecase.ErrInvalidCredentials
}

func (f *fakeAuthUsecase) UpdateAvatar(userID, avatarURL string) (*authdomain.User, error) {
	return f.validUser, nil
}

func (f *fakeAuthUsecase) RegisterDevice(userID, token, deviceInfo string) error { return nil }
func (f *fakeAuthUsecase) UnregisterDevice(token string) error                  { return nil }

func newTestRouter(uc usecase.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(uc)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/me", AuthMiddleware(uc), h.Me)
	return r
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	r := newTestRouter(&fakeAuthUsecase{loginErr: usecase.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"gata","passphrase":"01-01-2000"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid")
}

func TestLoginEndpointMissingFields(t *testing.T) {
	r := newTestRouter(&fakeAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"username":"gata"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpointServiceFailure(t *testing.T) {
	r := newTestRouter(&fakeAuthUsecase{loginErr: assert.AnError})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"gata","passphrase":"01-01-2000"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "try again")
}

func TestMiddlewareRejectsCorruptedToken(t *testing.T) {
	r := newTestRouter(&fakeAuthUsecase{validUser: &authdomain.User{ID: "u1", Username: "gata"}})

	// Corrupted token simply means logged out, never a crash
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer corrupted-blob")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Missing header behaves the same
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsIdentity(t *testing.T) {
	user := &authdomain.User{ID: "u1", Username: "gata"}
	r := newTestRouter(&fakeAuthUsecase{validUser: user})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"gata"`)
	assert.NotContains(t, w.Body.String(), "passphrase")
}
