package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API speaks the same wire format as the original client: collection
// endpoints return bare arrays, mutations return the affected record, and
// deletes return {"success":true}. Failures carry a single "error" field.

// ErrorBody is the JSON shape of every failure response.
type ErrorBody struct {
	Error string `json:"error"`
}

// DeleteBody is the JSON shape of every delete response.
type DeleteBody struct {
	Success bool `json:"success"`
}

// OK writes data with 200.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Deleted writes the delete acknowledgement with 200.
// Deletes are acknowledged even when the target never existed.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, DeleteBody{Success: true})
}

// Error writes a failure with the given status.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// BadRequest writes a 400 failure.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound writes a 404 failure.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError writes a 500 failure.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal error")
}
