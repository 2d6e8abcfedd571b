package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartspend/internal/config"
	"smartspend/internal/models"
	"smartspend/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) createTokenService(accessDuration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	jwtConfig := &config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  accessDuration,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}

	return services.NewTokenService(jwtConfig)
}

func (s *AuthMiddlewareSuite) runRequest(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.NoError(handler(c))
	return rec, c
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	user := &models.User{
		ID:       uuid.New(),
		Username: "alice",
		IsActive: true,
	}

	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.Require().NoError(err)

	rec, c := s.runRequest(RequireAuth(s.tokenService), "Bearer "+token)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(user.ID, c.Get("user_id"))
	s.Equal("alice", c.Get("username"))
	s.NotEmpty(c.Get("token_jti"))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	rec, _ := s.runRequest(RequireAuth(s.tokenService), "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	rec, _ := s.runRequest(RequireAuth(s.tokenService), "not-a-bearer-token")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_GarbageToken() {
	rec, _ := s.runRequest(RequireAuth(s.tokenService), "Bearer not.a.jwt")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	expiredService := s.createTokenService(-time.Hour)

	user := &models.User{ID: uuid.New(), Username: "alice", IsActive: true}
	token, _, err := expiredService.GenerateAccessToken(user)
	s.Require().NoError(err)

	rec, _ := s.runRequest(RequireAuth(expiredService), "Bearer "+token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenFromAnotherKey() {
	otherService := s.createTokenService(24 * time.Hour)

	user := &models.User{ID: uuid.New(), Username: "alice", IsActive: true}
	token, _, err := otherService.GenerateAccessToken(user)
	s.Require().NoError(err)

	rec, _ := s.runRequest(RequireAuth(s.tokenService), "Bearer "+token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_RefreshTokenRejected() {
	user := &models.User{ID: uuid.New(), Username: "alice", IsActive: true}
	token, _, err := s.tokenService.GenerateRefreshToken(user.ID)
	s.Require().NoError(err)

	rec, _ := s.runRequest(RequireAuth(s.tokenService), "Bearer "+token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}
