package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetIDParam parses a numeric path parameter. An absent or unparsable
// value cannot name any owned row, so callers treat ok == false the
// same way as a failed ownership lookup.
func GetIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil {
		return 0, false
	}

	return uint(id), true
}
