// Package controller holds the helpers shared by every handler package.
package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/rs/zerolog/log"
)

// ParseIDParam reads a numeric path parameter. A non-numeric value is a
// BadRequest before any store access happens.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(400, dto.Response{Message: "invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

// RespondError maps a classified error to its status code. Unclassified
// failures are logged with full detail and surface as a generic message.
func RespondError(ctx *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindUnclassified {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unclassified failure")
	}
	ctx.JSON(apperr.HTTPStatus(err), dto.Response{Message: apperr.PublicMessage(err)})
}
