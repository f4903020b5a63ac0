package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifehub-dev/lifehub/db"
	"github.com/lifehub-dev/lifehub/internal/models"
	"github.com/lifehub-dev/lifehub/internal/ownership"
	"github.com/lifehub-dev/lifehub/internal/utils"
	"gorm.io/gorm"
)

const projectNotFound = "Project not found"

type CreateProjectRequest struct {
	AreaID      uint    `json:"area_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
	Pinned      bool    `json:"pinned"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
	Pinned      *bool   `json:"pinned"`
	AreaID      *uint   `json:"area_id"`
}

type ProjectResponse struct {
	ID          uint      `json:"id"`
	AreaID      uint      `json:"area_id"`
	Icon        *string   `json:"icon"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func projectResponse(project models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		AreaID:      project.AreaID,
		Icon:        project.Icon,
		Name:        project.Name,
		Description: project.Description,
		Pinned:      project.Pinned,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ListProjects returns the caller's projects in alphabetical order,
// optionally narrowed to one area. The filter area id crosses the
// ownership boundary like any other id: foreign or missing is a 404.
func ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	query := db.DB.
		Select("projects.*").
		Joins("JOIN areas ON areas.id = projects.area_id").
		Where("areas.user_id = ?", userID)

	if rawAreaID := ctx.Query("area_id"); rawAreaID != "" {
		areaID, err := strconv.ParseUint(rawAreaID, 10, 32)

		if err != nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": areaNotFound})
			return
		}

		if _, err := ownership.ResolveArea(db.DB, uint(areaID), userID); err != nil {
			respondResolveError(ctx, err, areaNotFound)
			return
		}

		query = query.Where("projects.area_id = ?", areaID)
	}

	var projects []models.Project

	if err := query.Order("projects.name").Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := ownership.ResolveArea(db.DB, req.AreaID, userID); err != nil {
		respondResolveError(ctx, err, areaNotFound)
		return
	}

	project := models.Project{
		AreaID:      req.AreaID,
		Icon:        req.Icon,
		Name:        req.Name,
		Description: req.Description,
		Pinned:      req.Pinned,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, projectResponse(project))
}

func GetProject(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, projectResponse(*project))
}

// UpdateProject applies a partial update. Reparenting re-resolves the
// destination area against the caller before anything is written, so a
// project can never be moved under an area the caller does not own.
func UpdateProject(ctx *gin.Context) {
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

	var req UpdateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.AreaID != nil && *req.AreaID != project.AreaID {
		if _, err := ownership.ResolveArea(db.DB, *req.AreaID, userID); err != nil {
			respondResolveError(ctx, err, areaNotFound)
			return
		}
		project.AreaID = *req.AreaID
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Icon != nil {
		project.Icon = req.Icon
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Pinned != nil {
		project.Pinned = *req.Pinned
	}

	if err := db.DB.Save(project).Error; err != nil {
		log.Printf("Failed to update project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, projectResponse(*project))
}

func DeleteProject(ctx *gin.Context) {
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

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectNextAction{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	})

	if err != nil {
		log.Printf("Failed to delete project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
