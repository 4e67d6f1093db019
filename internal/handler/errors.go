package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"delivery-service/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Authoriser answers role questions about the ids in a request
type Authoriser interface {
	IsValid(id int64) bool
	IsUser(ctx context.Context, id int64) bool
	IsVendor(ctx context.Context, id int64) bool
	IsCourier(ctx context.Context, id int64) bool
	IsAdmin(ctx context.Context, id int64) bool
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// writeError maps a service error onto a status code and error body
func writeError(c *gin.Context, err error) {
	var locationNotFound *models.LocationNotFoundError
	var entityNotFound *models.EntityNotFoundError

	switch {
	case errors.As(err, &locationNotFound), errors.As(err, &entityNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidRadius), errors.Is(err, models.ErrInvalidCoordinate), errors.Is(err, models.ErrInvalidID):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).
			Str("request_id", c.GetString(requestIDKey)).
			Str("path", c.FullPath()).
			Msg("request failed")
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}

// int64Param parses a path parameter as an identifier
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid path parameter '"+name+"'")
		return 0, false
	}
	return id, true
}

// callerID parses the mandatory userId query parameter
func callerID(c *gin.Context) (int64, bool) {
	raw := c.Query("userId")
	if raw == "" {
		abortWithError(c, http.StatusBadRequest, "missing required query parameter 'userId'")
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid query parameter 'userId'")
		return 0, false
	}
	return id, true
}

type radiusResponse struct {
	Radius int `json:"radius" example:"5000"`
}

type radiusRequest struct {
	Radius *int `json:"radius" binding:"required" example:"1500"`
}

type errorResponse struct {
	Error string `json:"error" example:"internal server error"`
}
