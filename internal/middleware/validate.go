package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spaceatlas/atlas-backend/internal/model"
	"github.com/spaceatlas/atlas-backend/internal/response"
)

// Context keys for payloads parsed by the validation stages. Validation runs
// before authentication on mutating routes, so the handler at the end of the
// chain reads the already-parsed payload from the context instead of the
// request body.
const (
	ContextKeyCreatePayload = "create_payload"
	ContextKeyUpdatePayload = "update_payload"
)

// ValidateCreateBody parses and validates a full celestial body payload,
// accumulating every violated rule into the errors list.
func ValidateCreateBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.CreateBodyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.AbortFail(c, http.StatusBadRequest, "Invalid request payload")
			return
		}

		if errs := req.Validate(); len(errs) > 0 {
			response.AbortFailWithErrors(c, http.StatusBadRequest, "Validation failed", errs)
			return
		}

		c.Set(ContextKeyCreatePayload, &req)
		c.Next()
	}
}

// ValidateUpdateBody parses a partial celestial body payload and validates
// only the fields present in it.
func ValidateUpdateBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.UpdateBodyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.AbortFail(c, http.StatusBadRequest, "Invalid request payload")
			return
		}

		if !req.HasFields() {
			response.AbortFail(c, http.StatusBadRequest, "At least one field must be provided for update")
			return
		}

		if errs := req.Validate(); len(errs) > 0 {
			response.AbortFailWithErrors(c, http.StatusBadRequest, "Validation failed", errs)
			return
		}

		c.Set(ContextKeyUpdatePayload, &req)
		c.Next()
	}
}

// CreatePayload retrieves the payload stored by ValidateCreateBody.
func CreatePayload(c *gin.Context) *model.CreateBodyRequest {
	val, exists := c.Get(ContextKeyCreatePayload)
	if !exists {
		return nil
	}
	req, ok := val.(*model.CreateBodyRequest)
	if !ok {
		return nil
	}
	return req
}

// UpdatePayload retrieves the payload stored by ValidateUpdateBody.
func UpdatePayload(c *gin.Context) *model.UpdateBodyRequest {
	val, exists := c.Get(ContextKeyUpdatePayload)
	if !exists {
		return nil
	}
	req, ok := val.(*model.UpdateBodyRequest)
	if !ok {
		return nil
	}
	return req
}
