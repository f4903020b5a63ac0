// Package ownership decides, for every entity kind, whether a caller may
// touch a row. Each resolver walks the belongs-to edges from the row up
// to its owning user with indexed joins and compares that user to the
// caller. A row owned by someone else resolves exactly like a row that
// does not exist, so callers cannot probe for foreign ids.
package ownership

import (
	"errors"

	"github.com/lifehub-dev/lifehub/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound covers both "no such row" and "row owned by another user".
// Handlers must surface it as a plain 404 and never split the two cases.
var ErrNotFound = errors.New("entity not found")

func ResolveArea(db *gorm.DB, areaID uint, callerID uint) (*models.Area, error) {
	var area models.Area

	err := db.Where("id = ? AND user_id = ?", areaID, callerID).First(&area).Error

	if err != nil {
		return nil, translate(err)
	}

	return &area, nil
}

// ResolveProject authorizes through the project's area: the project id
// alone says nothing about ownership.
func ResolveProject(db *gorm.DB, projectID uint, callerID uint) (*models.Project, error) {
	var project models.Project

	err := db.
		Select("projects.*").
		Joins("JOIN areas ON areas.id = projects.area_id").
		Where("projects.id = ? AND areas.user_id = ?", projectID, callerID).
		First(&project).Error

	if err != nil {
		return nil, translate(err)
	}

	return &project, nil
}

// ResolveNextAction walks all three hops: action -> project -> area -> user.
func ResolveNextAction(db *gorm.DB, actionID uint, callerID uint) (*models.ProjectNextAction, error) {
	var action models.ProjectNextAction

	err := db.
		Select("project_next_actions.*").
		Joins("JOIN projects ON projects.id = project_next_actions.project_id").
		Joins("JOIN areas ON areas.id = projects.area_id").
		Where("project_next_actions.id = ? AND areas.user_id = ?", actionID, callerID).
		First(&action).Error

	if err != nil {
		return nil, translate(err)
	}

	return &action, nil
}

// ResolveOneShotTask authorizes on the task's own user id. The area
// link, when set, is a tag and is not consulted here.
func ResolveOneShotTask(db *gorm.DB, taskID uint, callerID uint) (*models.OneShotTask, error) {
	var task models.OneShotTask

	err := db.Where("id = ? AND user_id = ?", taskID, callerID).First(&task).Error

	if err != nil {
		return nil, translate(err)
	}

	return &task, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
