package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifehub-dev/lifehub/db"
	"github.com/lifehub-dev/lifehub/internal/models"
	"github.com/lifehub-dev/lifehub/internal/ownership"
	"github.com/lifehub-dev/lifehub/internal/utils"
	"gorm.io/gorm"
)

const areaNotFound = "Area not found"

type CreateAreaRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateAreaRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
}

type AreaResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func areaResponse(area models.Area) AreaResponse {
	return AreaResponse{
		ID:          area.ID,
		UserID:      area.UserID,
		Name:        area.Name,
		Description: area.Description,
		Color:       area.Color,
		CreatedAt:   area.CreatedAt,
		UpdatedAt:   area.UpdatedAt,
	}
}

// ListAreas returns the caller's areas in alphabetical order.
func ListAreas(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var areas []models.Area

	if err := db.DB.Where("user_id = ?", userID).Order("name").Find(&areas).Error; err != nil {
		log.Printf("Failed to list areas: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]AreaResponse, 0, len(areas))

	for _, area := range areas {
		response = append(response, areaResponse(area))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateArea(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateAreaRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	area := models.Area{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}

	if err := db.DB.Create(&area).Error; err != nil {
		log.Printf("Failed to create area: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, areaResponse(area))
}

func GetArea(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	areaID, ok := utils.GetIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": areaNotFound})
		return
	}

	area, err := ownership.ResolveArea(db.DB, areaID, userID)

	if err != nil {
		respondResolveError(ctx, err, areaNotFound)
		return
	}

	ctx.JSON(http.StatusOK, areaResponse(*area))
}

func UpdateArea(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	areaID, ok := utils.GetIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": areaNotFound})
		return
	}

	area, err := ownership.ResolveArea(db.DB, areaID, userID)

	if err != nil {
		respondResolveError(ctx, err, areaNotFound)
		return
	}

	var req UpdateAreaRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.Description != nil {
		area.Description = req.Description
	}
	if req.Color != nil {
		area.Color = req.Color
	}

	if err := db.DB.Save(area).Error; err != nil {
		log.Printf("Failed to update area %d: %v", area.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, areaResponse(*area))
}

// DeleteArea removes the area, its projects and their next actions, and
// unlinks one-shot tasks tagged with it. The task rows survive; only
// their area reference is cleared. Transactional: a failure anywhere
// rolls the whole cascade back.
func DeleteArea(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	areaID, ok := utils.GetIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": areaNotFound})
		return
	}

	area, err := ownership.ResolveArea(db.DB, areaID, userID)

	if err != nil {
		respondResolveError(ctx, err, areaNotFound)
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		areaProjects := tx.Model(&models.Project{}).Select("id").Where("area_id = ?", area.ID)

		if err := tx.Where("project_id IN (?)", areaProjects).Delete(&models.ProjectNextAction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("area_id = ?", area.ID).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.OneShotTask{}).Where("area_id = ?", area.ID).Update("area_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(area).Error
	})

	if err != nil {
		log.Printf("Failed to delete area %d: %v", area.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
