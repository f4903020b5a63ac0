package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifehub-dev/lifehub/internal/ownership"
)

// respondResolveError maps a resolver failure onto the wire. Not-owned
// and nonexistent collapse into the same 404 body; anything else is a
// storage fault and dies as a 500.
func respondResolveError(ctx *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, ownership.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}

	log.Printf("Ownership resolution failed: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
