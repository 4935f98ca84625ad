package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/port"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var authTracer = otel.Tracer("service/auth")

// The demo deployment ships one real credential next to the mock-auth mode,
// so the bcrypt path stays exercised.
const (
	demoEmail    = "sarah.johnson@localstyle.com"
	demoPassword = "localstyle-demo"
	bcryptCost   = 12
)

// AuthService issues and rotates JWT token pairs. In mock mode any non-empty
// credentials log in as the brand owner; otherwise only the seeded demo
// credential is accepted.
type AuthService struct {
	tokens  port.TokenStore
	metrics *observability.Metrics
	logger  *zap.Logger

	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	mockAuth   bool
	demoHash   []byte
}

// NewAuthService creates a new auth service.
func NewAuthService(tokens port.TokenStore, metrics *observability.Metrics, logger *zap.Logger, jwtSecret string, accessTTL, refreshTTL time.Duration, mockAuth bool) (*AuthService, error) {
	demoHash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo credential: %w", err)
	}
	return &AuthService{
		tokens:     tokens,
		metrics:    metrics,
		logger:     logger,
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		mockAuth:   mockAuth,
		demoHash:   demoHash,
	}, nil
}

// ============================================================
// Login — POST /v1/auth/login
// ============================================================

func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.Login")
	defer span.End()

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, &domain.ErrUnauthorized{Message: "username and password are required"}
	}

	if !s.mockAuth {
		if !strings.EqualFold(req.Username, demoEmail) ||
			bcrypt.CompareHashAndPassword(s.demoHash, []byte(req.Password)) != nil {
			s.logger.Warn("login rejected", zap.String("username", req.Username))
			return nil, &domain.ErrUnauthorized{Message: "invalid credentials"}
		}
	}

	user := domain.User{
		ID:    "user_001",
		Email: req.Username,
		Name:  "Sarah Johnson",
		Role:  domain.RoleBrandOwner,
	}

	tokens, err := s.issueTokens(ctx, &user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.Bool("mock_auth", s.mockAuth),
	)
	return &domain.AuthResponse{User: user, Tokens: *tokens}, nil
}

// ============================================================
// Refresh — POST /v1/auth/refresh
// ============================================================

// Refresh rotates the token pair: the presented refresh token is revoked and
// a new pair is issued.
func (s *AuthService) Refresh(ctx context.Context, req *domain.RefreshRequest) (*domain.AuthResponse, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.Refresh")
	defer span.End()

	tokenHash := hashToken(req.RefreshToken)

	stored, err := s.tokens.GetRefreshToken(ctx, tokenHash)
	if err != nil {
		return nil, fmt.Errorf("get refresh token: %w", err)
	}
	if stored == nil {
		return nil, &domain.ErrUnauthorized{Message: "invalid refresh token"}
	}
	if stored.ExpiresAt.Before(time.Now()) {
		s.logger.Warn("refresh: expired token used", zap.String("user_id", stored.UserID))
		_ = s.tokens.RevokeRefreshToken(ctx, tokenHash)
		return nil, &domain.ErrUnauthorized{Message: "refresh token expired"}
	}

	_ = s.tokens.RevokeRefreshToken(ctx, tokenHash)

	user := domain.User{
		ID:    stored.UserID,
		Email: demoEmail,
		Name:  "Sarah Johnson",
		Role:  domain.RoleBrandOwner,
	}
	tokens, err := s.issueTokens(ctx, &user)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponse{User: user, Tokens: *tokens}, nil
}

// ============================================================
// Logout — POST /v1/auth/logout
// ============================================================

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	ctx, span := authTracer.Start(ctx, "AuthService.Logout")
	defer span.End()

	if err := s.tokens.RevokeAllRefreshTokens(ctx, userID); err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}

	s.logger.Info("user logged out", zap.String("user_id", userID))
	return nil
}

// ============================================================
// ValidateAccessToken — used by middleware
// ============================================================

// JWTClaims represents the custom claims in access tokens.
type JWTClaims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

func (s *AuthService) ValidateAccessToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, &domain.ErrUnauthorized{Message: "invalid or expired token"}
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, &domain.ErrUnauthorized{Message: "invalid token"}
	}
	if claims.Type != "access" {
		return nil, &domain.ErrUnauthorized{Message: "invalid token type"}
	}
	return claims, nil
}

// ============================================================
// Internal JWT helpers
// ============================================================

func (s *AuthService) issueTokens(ctx context.Context, user *domain.User) (*domain.AuthTokens, error) {
	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken, refreshHash, err := generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	rec := &domain.RefreshTokenRecord{
		TokenHash: refreshHash,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.tokens.StoreRefreshToken(ctx, rec); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &domain.AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) signAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		Sub:   user.ID,
		Email: user.Email,
		Role:  string(user.Role),
		Type:  "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			Issuer:    "brand-admin-api",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func generateRefreshToken() (raw string, hashed string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(b)
	hashed = hashToken(raw)
	return raw, hashed, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
