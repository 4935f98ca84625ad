package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/infra/memstore"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/service"

	"go.uber.org/zap"
)

func newAuthService(t *testing.T, mockAuth bool) *service.AuthService {
	t.Helper()
	svc, err := service.NewAuthService(
		memstore.NewTokenStore(), observability.NewMetrics(), zap.NewNop(),
		"test-secret", 15*time.Minute, 7*24*time.Hour, mockAuth,
	)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc
}

func TestLogin_MockModeAcceptsAnyCredentials(t *testing.T) {
	svc := newAuthService(t, true)

	resp, err := svc.Login(context.Background(), &domain.LoginRequest{
		Username: "whoever@example.com",
		Password: "anything",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if resp.User.Role != domain.RoleBrandOwner {
		t.Errorf("role = %s, want brand_owner", resp.User.Role)
	}
	if resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
		t.Error("expected both tokens")
	}

	claims, err := svc.ValidateAccessToken(resp.Tokens.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.Sub != resp.User.ID || claims.Role != string(domain.RoleBrandOwner) {
		t.Errorf("claims = %+v, want sub/role matching login", claims)
	}
}

func TestLogin_EmptyCredentialsRejected(t *testing.T) {
	svc := newAuthService(t, true)

	tests := []domain.LoginRequest{
		{Username: "", Password: "x"},
		{Username: "a@b.com", Password: ""},
		{Username: "   ", Password: "x"},
	}
	for _, req := range tests {
		_, err := svc.Login(context.Background(), &req)
		var unauthorized *domain.ErrUnauthorized
		if !errors.As(err, &unauthorized) {
			t.Errorf("Login(%q, %q): expected ErrUnauthorized, got %v", req.Username, req.Password, err)
		}
	}
}

func TestLogin_DemoCredentialWithoutMockAuth(t *testing.T) {
	svc := newAuthService(t, false)
	ctx := context.Background()

	// Arbitrary credentials are rejected once mock auth is off.
	_, err := svc.Login(ctx, &domain.LoginRequest{Username: "whoever@example.com", Password: "anything"})
	var unauthorized *domain.ErrUnauthorized
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// The seeded demo credential still works, bcrypt-verified.
	resp, err := svc.Login(ctx, &domain.LoginRequest{
		Username: "sarah.johnson@localstyle.com",
		Password: "localstyle-demo",
	})
	if err != nil {
		t.Fatalf("demo login failed: %v", err)
	}
	if resp.User.Role != domain.RoleBrandOwner {
		t.Errorf("role = %s, want brand_owner", resp.User.Role)
	}

	// Wrong password for the demo user is rejected.
	_, err = svc.Login(ctx, &domain.LoginRequest{
		Username: "sarah.johnson@localstyle.com",
		Password: "wrong",
	})
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong password, got %v", err)
	}
}

func TestRefresh_RotatesTokens(t *testing.T) {
	svc := newAuthService(t, true)
	ctx := context.Background()

	login, err := svc.Login(ctx, &domain.LoginRequest{Username: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, &domain.RefreshRequest{RefreshToken: login.Tokens.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.Tokens.RefreshToken == login.Tokens.RefreshToken {
		t.Error("refresh token should rotate")
	}

	// The old refresh token is revoked by rotation.
	_, err = svc.Refresh(ctx, &domain.RefreshRequest{RefreshToken: login.Tokens.RefreshToken})
	var unauthorized *domain.ErrUnauthorized
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized for reused refresh token, got %v", err)
	}

	// The rotated token still works.
	if _, err := svc.Refresh(ctx, &domain.RefreshRequest{RefreshToken: refreshed.Tokens.RefreshToken}); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
}

func TestLogout_RevokesAllRefreshTokens(t *testing.T) {
	svc := newAuthService(t, true)
	ctx := context.Background()

	login, err := svc.Login(ctx, &domain.LoginRequest{Username: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, login.User.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	_, err = svc.Refresh(ctx, &domain.RefreshRequest{RefreshToken: login.Tokens.RefreshToken})
	var unauthorized *domain.ErrUnauthorized
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestValidateAccessToken_RejectsGarbage(t *testing.T) {
	svc := newAuthService(t, true)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.ValidateAccessToken(token)
		var unauthorized *domain.ErrUnauthorized
		if !errors.As(err, &unauthorized) {
			t.Errorf("ValidateAccessToken(%q): expected ErrUnauthorized, got %v", token, err)
		}
	}
}
