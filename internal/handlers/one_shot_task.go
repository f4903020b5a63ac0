package handlers

import (
	"bytes"
	"encoding/json"
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

const oneShotTaskNotFound = "Task not found"

// NullableAreaID distinguishes an absent "area_id" key from an explicit
// null: null clears the link, absent leaves it untouched.
type NullableAreaID struct {
	Set   bool
	Value *uint
}

func (n *NullableAreaID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

type CreateOneShotTaskRequest struct {
	Title  string `json:"title" binding:"required"`
	AreaID *uint  `json:"area_id"`
}

type UpdateOneShotTaskRequest struct {
	Title  *string        `json:"title"`
	Done   *bool          `json:"done"`
	AreaID NullableAreaID `json:"area_id"`
}

type OneShotTaskResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	AreaID    *uint     `json:"area_id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func oneShotTaskResponse(task models.OneShotTask) OneShotTaskResponse {
	return OneShotTaskResponse{
		ID:        task.ID,
		UserID:    task.UserID,
		AreaID:    task.AreaID,
		Title:     task.Title,
		Done:      task.Done,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ListOneShotTasks returns the caller's tasks, unfinished before
// finished, newest first within each group. The id tiebreak keeps the
// order stable when rows share a creation timestamp.
func ListOneShotTasks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var tasks []models.OneShotTask

	err = db.DB.
		Where("user_id = ?", userID).
		Order("done ASC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&tasks).Error

	if err != nil {
		log.Printf("Failed to list one-shot tasks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]OneShotTaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, oneShotTaskResponse(task))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateOneShotTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateOneShotTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.AreaID != nil {
		if _, err := ownership.ResolveArea(db.DB, *req.AreaID, userID); err != nil {
			respondResolveError(ctx, err, areaNotFound)
			return
		}
	}

	task := models.OneShotTask{
		UserID: userID,
		AreaID: req.AreaID,
		Title:  strings.TrimSpace(req.Title),
	}

	if err := db.DB.Create(&task).Error; err != nil {
		log.Printf("Failed to create one-shot task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, oneShotTaskResponse(task))
}

func GetOneShotTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	taskID, ok := utils.GetIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": oneShotTaskNotFound})
		return
	}

	task, err := ownership.ResolveOneShotTask(db.DB, taskID, userID)

	if err != nil {
		respondResolveError(ctx, err, oneShotTaskNotFound)
		return
	}

	ctx.JSON(http.StatusOK, oneShotTaskResponse(*task))
}

// UpdateOneShotTask applies a partial update. Tagging the task with an
// area re-resolves that area against the caller, the same guard project
// reparenting gets; a foreign area id is indistinguishable from a
// missing one.
func UpdateOneShotTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	taskID, ok := utils.GetIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": oneShotTaskNotFound})
		return
	}

	task, err := ownership.ResolveOneShotTask(db.DB, taskID, userID)

	if err != nil {
		respondResolveError(ctx, err, oneShotTaskNotFound)
		return
	}

	var req UpdateOneShotTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.AreaID.Set {
		if req.AreaID.Value != nil {
			if _, err := ownership.ResolveArea(db.DB, *req.AreaID.Value, userID); err != nil {
				respondResolveError(ctx, err, areaNotFound)
				return
			}
		}
		task.AreaID = req.AreaID.Value
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Done != nil {
		task.Done = *req.Done
	}

	if err := db.DB.Save(task).Error; err != nil {
		log.Printf("Failed to update one-shot task %d: %v", task.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, oneShotTaskResponse(*task))
}

func DeleteOneShotTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	taskID, ok := utils.GetIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": oneShotTaskNotFound})
		return
	}

	task, err := ownership.ResolveOneShotTask(db.DB, taskID, userID)

	if err != nil {
		respondResolveError(ctx, err, oneShotTaskNotFound)
		return
	}

	if err := db.DB.Delete(task).Error; err != nil {
		log.Printf("Failed to delete one-shot task %d: %v", task.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
