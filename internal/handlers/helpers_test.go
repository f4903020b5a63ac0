package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/lifehub-dev/lifehub/db"
	"github.com/lifehub-dev/lifehub/internal/auth"
	"github.com/lifehub-dev/lifehub/internal/models"
	"github.com/lifehub-dev/lifehub/internal/router"
	"github.com/lifehub-dev/lifehub/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestEnv wires the real router onto a throwaway SQLite database so
// every test exercises the full request path: middleware, ownership
// resolution, persistence.
func newTestEnv(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "handler-test-signing-key")

	if err := auth.InitJWTSecret(); err != nil {
		t.Fatalf("init token signing: %v", err)
	}

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "lifehub.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Area{},
		&models.Project{},
		&models.ProjectNextAction{},
		&models.OneShotTask{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	db.DB = gdb

	return router.NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func registerUser(t *testing.T, r *gin.Engine, email, password string) types.UserResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%s)", email, w.Code, w.Body.String())
	}

	var user types.UserResponse
	decodeBody(t, w, &user)
	return user
}

func loginUser(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%s)", email, w.Code, w.Body.String())
	}

	var token types.TokenResponse
	decodeBody(t, w, &token)

	if token.TokenType != "bearer" {
		t.Fatalf("expected token_type 'bearer', got %q", token.TokenType)
	}
	return token.AccessToken
}

func createArea(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/areas", token, gin.H{"name": name})
	if w.Code != http.StatusCreated {
		t.Fatalf("create area %q: expected 201, got %d (%s)", name, w.Code, w.Body.String())
	}

	var area struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &area)
	return area.ID
}

func createProject(t *testing.T, r *gin.Engine, token string, areaID uint, name string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/projects", token, gin.H{
		"area_id": areaID,
		"name":    name,
		"pinned":  false,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create project %q: expected 201, got %d (%s)", name, w.Code, w.Body.String())
	}

	var project struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &project)
	return project.ID
}

func createNextAction(t *testing.T, r *gin.Engine, token string, projectID uint, title string) uint {
	t.Helper()

	path := fmt.Sprintf("/projects/%d/next-actions", projectID)

	w := doJSON(t, r, http.MethodPost, path, token, gin.H{"title": title})
	if w.Code != http.StatusCreated {
		t.Fatalf("create next action %q: expected 201, got %d (%s)", title, w.Code, w.Body.String())
	}

	var action struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &action)
	return action.ID
}

func createOneShotTask(t *testing.T, r *gin.Engine, token string, body gin.H) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/one-shot-tasks", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create one-shot task: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var task struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &task)
	return task.ID
}
