package middleware

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/spaceatlas/atlas-backend/internal/response"
)

func updateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/bodies/:id", ValidateUpdateBody(), func(c *gin.Context) {
		req := UpdatePayload(c)
		if req == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestValidateUpdateRejectsEmptyPayload(t *testing.T) {
	r := updateRouter()
	w := doRequest(r, http.MethodPut, "/bodies/507f1f77bcf86cd799439011", `{}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body response.Body
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Success {
		t.Error("success = true on rejection")
	}
	if body.Message != "At least one field must be provided for update" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestValidateUpdateRejectsMalformedJSON(t *testing.T) {
	r := updateRouter()
	w := doRequest(r, http.MethodPut, "/bodies/507f1f77bcf86cd799439011", `{"name":`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestValidateUpdateAccumulatesPresentFieldErrors(t *testing.T) {
	r := updateRouter()
	w := doRequest(r, http.MethodPut, "/bodies/507f1f77bcf86cd799439011",
		`{"type": "Galaxy", "description": "too short"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body response.Body
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Errors) != 2 {
		t.Errorf("errors = %v, want 2 entries", body.Errors)
	}
}

func TestValidateUpdatePassesPartialPayload(t *testing.T) {
	r := updateRouter()
	w := doRequest(r, http.MethodPut, "/bodies/507f1f77bcf86cd799439011",
		`{"discoveredBy": "Clyde Tombaugh"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
}
