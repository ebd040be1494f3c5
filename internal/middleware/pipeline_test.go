package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/spaceatlas/atlas-backend/internal/config"
	"github.com/spaceatlas/atlas-backend/internal/service"
)

const testSecret = "pipeline-test-secret"

const validPayload = `{
	"name": "Neptune",
	"type": "Planet",
	"description": "The eighth and farthest known planet from the Sun, a cold ice giant with supersonic winds and a deep blue color.",
	"imageUrl": "https://example.com/neptune.jpg",
	"discoveredBy": "Urbain Le Verrier",
	"discoveryDate": "September 23, 1846",
	"funFact": "Neptune was found by mathematics before it was seen through a telescope."
}`

func testAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret:     testSecret,
		JWTExpiry:     time.Hour,
		AdminUsername: "admin",
		AdminPassword: "password",
	})
}

func testRouter(svc *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bodies",
		ValidateCreateBody(),
		RequireJWT(svc),
		RequireRole(service.RoleAdmin),
		func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"success": true})
		},
	)
	r.DELETE("/bodies/:id",
		RequireJWT(svc),
		RequireRole(service.RoleAdmin),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		},
	)
	return r
}

// signToken builds a token with an arbitrary role using the shared secret,
// letting tests exercise the role check independently of the issuer.
func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Username: "someone",
		Role:     role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateWithoutTokenIsUnauthorized(t *testing.T) {
	r := testRouter(testAuthService())
	w := doRequest(r, http.MethodPost, "/bodies", validPayload, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401; body: %s", w.Code, w.Body.String())
	}
}

func TestCreateWithInvalidTokenIsUnauthorized(t *testing.T) {
	r := testRouter(testAuthService())
	w := doRequest(r, http.MethodPost, "/bodies", validPayload, "not-a-real-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestCreateWithNonAdminRoleIsForbidden(t *testing.T) {
	r := testRouter(testAuthService())
	w := doRequest(r, http.MethodPost, "/bodies", validPayload, signToken(t, "viewer"))
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403; body: %s", w.Code, w.Body.String())
	}
}

func TestCreateWithAdminTokenPasses(t *testing.T) {
	svc := testAuthService()
	r := testRouter(svc)

	token, err := svc.GenerateToken("admin")
	if err != nil {
		t.Fatal(err)
	}

	w := doRequest(r, http.MethodPost, "/bodies", validPayload, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
}

// Validation runs before authentication on create/update, so a bad payload
// is rejected with 400 even when no token is supplied.
func TestValidationPrecedesAuthentication(t *testing.T) {
	r := testRouter(testAuthService())
	w := doRequest(r, http.MethodPost, "/bodies", `{"name": "Neptune"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "imageUrl is required") {
		t.Errorf("missing accumulated field error: %s", w.Body.String())
	}
}

// Delete skips payload validation and goes straight to authentication.
func TestDeleteSkipsValidation(t *testing.T) {
	r := testRouter(testAuthService())
	w := doRequest(r, http.MethodDelete, "/bodies/507f1f77bcf86cd799439011", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
