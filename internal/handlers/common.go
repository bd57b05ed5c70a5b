// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/comicden/comics-backend/internal/apperrors"
	"github.com/comicden/comics-backend/internal/utils"
)

// serviceErrorResponse maps service error kinds to the API contract:
// bad input 401, missing target 404, duplicate 409, transient 503.
func serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrBadInput):
		utils.ValidationFailedResponse(c, err.Error(), nil)
	case errors.Is(err, apperrors.ErrNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrTransient):
		utils.ServiceUnavailableResponse(c, err.Error())
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
