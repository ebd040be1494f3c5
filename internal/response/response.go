package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the standardized API response envelope. Every handler renders
// through it so clients can rely on a single shape:
//
//	{success, message?, data?, pagination?, errors?}
type Body struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
}

// Pagination holds paging information for list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count for a total at the given limit.
func NewPagination(page, limit, total int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// Success sends a successful response carrying only data.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Body{Success: true, Data: data})
}

// SuccessMessage sends a successful response carrying only a message.
func SuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{Success: true, Message: message})
}

// SuccessData sends a successful response with a message and data.
func SuccessData(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Body{Success: true, Message: message, Data: data})
}

// SuccessList sends a successful list response with pagination metadata.
func SuccessList(c *gin.Context, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data, Pagination: pagination})
}

// Fail sends an error response with a message.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{Success: false, Message: message})
}

// FailWithErrors sends an error response with field-level error messages.
func FailWithErrors(c *gin.Context, statusCode int, message string, errs []string) {
	c.JSON(statusCode, Body{Success: false, Message: message, Errors: errs})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Body{Success: false, Message: message})
}

// AbortFailWithErrors aborts the middleware chain and sends an error
// response with field-level error messages.
func AbortFailWithErrors(c *gin.Context, statusCode int, message string, errs []string) {
	c.AbortWithStatusJSON(statusCode, Body{Success: false, Message: message, Errors: errs})
}
