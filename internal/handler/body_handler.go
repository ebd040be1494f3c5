package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spaceatlas/atlas-backend/internal/middleware"
	"github.com/spaceatlas/atlas-backend/internal/model"
	"github.com/spaceatlas/atlas-backend/internal/repository"
	"github.com/spaceatlas/atlas-backend/internal/response"
	"github.com/spaceatlas/atlas-backend/internal/service"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	// maxListLimit caps the page size so a single request cannot pull
	// the whole catalog.
	maxListLimit = 100

	msgNotFound      = "Celestial body not found"
	msgInvalidID     = "Invalid ID format"
	msgDuplicateName = "A celestial body with this name already exists"
	msgInternal      = "Internal server error"
)

// BodyHandler handles the celestial body catalog endpoints.
type BodyHandler struct {
	bodyService *service.BodyService
}

// NewBodyHandler creates a new BodyHandler.
func NewBodyHandler(bodyService *service.BodyService) *BodyHandler {
	return &BodyHandler{bodyService: bodyService}
}

// parseListParams coerces the list query parameters. Garbage or out-of-range
// page/limit values never fail the request; they snap to the nearest valid
// value instead.
func parseListParams(c *gin.Context) service.ListParams {
	return service.ListParams{
		Page:   parsePositiveInt(c.Query("page"), defaultPage, 0),
		Limit:  parsePositiveInt(c.Query("limit"), defaultLimit, maxListLimit),
		Search: c.Query("search"),
		Type:   c.Query("type"),
		Sort:   c.Query("sort"),
	}
}

func parsePositiveInt(raw string, fallback, max int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if n < 1 {
		return 1
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

// List godoc
// GET /api/bodies
// Lists bodies with search, type filter, sorting, and pagination.
func (h *BodyHandler) List(c *gin.Context) {
	params := parseListParams(c)

	bodies, total, err := h.bodyService.List(c.Request.Context(), params)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, msgInternal)
		return
	}

	if bodies == nil {
		bodies = []model.CelestialBody{}
	}

	response.SuccessList(c, bodies, response.NewPagination(params.Page, params.Limit, total))
}

// Get godoc
// GET /api/bodies/:id
// Returns a single body. Malformed identifiers are rejected before storage.
func (h *BodyHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !model.IsValidID(id) {
		response.Fail(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	body, err := h.bodyService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, msgNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, msgInternal)
		return
	}

	response.Success(c, http.StatusOK, body)
}

// Create godoc
// POST /api/bodies
// Persists the payload validated earlier in the chain.
func (h *BodyHandler) Create(c *gin.Context) {
	req := middleware.CreatePayload(c)
	if req == nil {
		response.Fail(c, http.StatusInternalServerError, msgInternal)
		return
	}

	body, err := h.bodyService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			response.Fail(c, http.StatusBadRequest, msgDuplicateName)
			return
		}
		response.Fail(c, http.StatusInternalServerError, msgInternal)
		return
	}

	response.SuccessData(c, http.StatusCreated, "Celestial body created successfully", body)
}

// Update godoc
// PUT /api/bodies/:id
// Applies the partial payload validated earlier in the chain.
func (h *BodyHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !model.IsValidID(id) {
		response.Fail(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	req := middleware.UpdatePayload(c)
	if req == nil {
		response.Fail(c, http.StatusInternalServerError, msgInternal)
		return
	}

	body, err := h.bodyService.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, msgNotFound)
		case errors.Is(err, repository.ErrDuplicateName):
			response.Fail(c, http.StatusBadRequest, msgDuplicateName)
		default:
			response.Fail(c, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	response.SuccessData(c, http.StatusOK, "Celestial body updated successfully", body)
}

// Delete godoc
// DELETE /api/bodies/:id
func (h *BodyHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !model.IsValidID(id) {
		response.Fail(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.bodyService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, msgNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, msgInternal)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Celestial body deleted successfully")
}
