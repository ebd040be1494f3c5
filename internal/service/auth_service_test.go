package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/spaceatlas/atlas-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     7 * 24 * time.Hour,
		AdminUsername: "admin",
		AdminPassword: "hunter22",
	}
}

func TestLoginIssuesVerifiableAdminToken(t *testing.T) {
	svc := NewAuthService(testConfig())

	token, err := svc.Login("admin", "hunter22")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("username = %q", claims.Username)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("role = %q", claims.Role)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("missing expiry")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Errorf("expiry %v not about 7 days out", ttl)
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	svc := NewAuthService(testConfig())

	for _, tc := range []struct{ user, pass string }{
		{"", ""},
		{"admin", ""},
		{"", "hunter22"},
	} {
		if _, err := svc.Login(tc.user, tc.pass); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("Login(%q, %q) err = %v, want ErrMissingCredentials", tc.user, tc.pass, err)
		}
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := NewAuthService(testConfig())

	for _, tc := range []struct{ user, pass string }{
		{"admin", "wrong"},
		{"root", "hunter22"},
		{"Admin", "hunter22"}, // exact match, case-sensitive
	} {
		if _, err := svc.Login(tc.user, tc.pass); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) err = %v, want ErrInvalidCredentials", tc.user, tc.pass, err)
		}
	}
}

func TestLoginWithBcryptHash(t *testing.T) {
	cfg := testConfig()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cure-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg.AdminPassword = ""
	cfg.AdminPasswordHash = string(hash)

	svc := NewAuthService(cfg)

	if _, err := svc.Login("admin", "s3cure-pass"); err != nil {
		t.Fatalf("login with hashed password failed: %v", err)
	}
	if _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := NewAuthService(testConfig())
	token, err := svc.GenerateToken("admin")
	if err != nil {
		t.Fatal(err)
	}

	otherCfg := testConfig()
	otherCfg.JWTSecret = "different-secret"
	other := NewAuthService(otherCfg)

	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpiry = -time.Hour
	svc := NewAuthService(cfg)

	token, err := svc.GenerateToken("admin")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(testConfig())
	for _, tok := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := svc.ValidateToken(tok); err == nil {
			t.Errorf("ValidateToken(%q) accepted", tok)
		}
	}
}
