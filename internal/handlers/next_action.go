package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifehub-dev/lifehub/db"
	"github.com/lifehub-dev/lifehub/internal/models"
	"github.com/lifehub-dev/lifehub/internal/ownership"
	"github.com/lifehub-dev/lifehub/internal/utils"
)

const nextActionNotFound = "Next action not found"

type CreateNextActionRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateNextActionRequest struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}

type NextActionResponse struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"project_id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func nextActionResponse(action models.ProjectNextAction) NextActionResponse {
	return NextActionResponse{
		ID:        action.ID,
		ProjectID: action.ProjectID,
		Title:     action.Title,
		Done:      action.Done,
		CreatedAt: action.CreatedAt,
		UpdatedAt: action.UpdatedAt,
	}
}

// ListNextActions returns a project's next actions in insertion order.
// The parent project is resolved through its area first; a foreign
// project id 404s before any action row is touched.
func ListNextActions(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	projectID, ok := utils.GetIDParam(ctx, "project_id")

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": projectNotFound})
		return
	}

	project, err := ownership.ResolveProject(db.DB, projectID, userID)

	if err != nil {
		respondResolveError(ctx, err, projectNotFound)
		return
	}

	var actions []models.ProjectNextAction

	if err := db.DB.Where("project_id = ?", project.ID).Order("id").Find(&actions).Error; err != nil {
		log.Printf("Failed to list next actions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]NextActionResponse, 0, len(actions))

	for _, action := range actions {
		response = append(response, nextActionResponse(action))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateNextAction(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	projectID, ok := utils.GetIDParam(ctx, "project_id")

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": projectNotFound})
		return
	}

	project, err := ownership.ResolveProject(db.DB, projectID, userID)

	if err != nil {
		respondResolveError(ctx, err, projectNotFound)
		return
	}

	var req CreateNextActionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	action := models.ProjectNextAction{
		ProjectID: project.ID,
		Title:     strings.TrimSpace(req.Title),
	}

	if err := db.DB.Create(&action).Error; err != nil {
		log.Printf("Failed to create next action: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, nextActionResponse(action))
}

func UpdateNextAction(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	actionID, ok := utils.GetIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": nextActionNotFound})
		return
	}

	action, err := ownership.ResolveNextAction(db.DB, actionID, userID)

	if err != nil {
		respondResolveError(ctx, err, nextActionNotFound)
		return
	}

	var req UpdateNextActionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title != nil {
		action.Title = strings.TrimSpace(*req.Title)
	}
	if req.Done != nil {
		action.Done = *req.Done
	}

	if err := db.DB.Save(action).Error; err != nil {
		log.Printf("Failed to update next action %d: %v", action.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, nextActionResponse(*action))
}

func DeleteNextAction(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	actionID, ok := utils.GetIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": nextActionNotFound})
		return
	}

	action, err := ownership.ResolveNextAction(db.DB, actionID, userID)

	if err != nil {
		respondResolveError(ctx, err, nextActionNotFound)
		return
	}

	if err := db.DB.Delete(action).Error; err != nil {
		log.Printf("Failed to delete next action %d: %v", action.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
