package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

// A valid token for another user must see someone else's area exactly
// the way it sees a nonexistent id: same status, same body shape.
func TestAreaOwnershipOpacity(t *testing.T) {
	r := newTestEnv(t)

	registerUser(t, r, "alice@example.com", "pw1")
	registerUser(t, r, "bob@example.com", "pw2")
	aliceToken := loginUser(t, r, "alice@example.com", "pw1")
	bobToken := loginUser(t, r, "bob@example.com", "pw2")

	areaID := createArea(t, r, aliceToken, "Health")

	foreign := doJSON(t, r, http.MethodGet, fmt.Sprintf("/areas/%d", areaID), bobToken, nil)
	missing := doJSON(t, r, http.MethodGet, "/areas/987654", bobToken, nil)

	if foreign.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign area, got %d", foreign.Code)
	}
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing area, got %d", missing.Code)
	}
	if foreign.Body.String() != missing.Body.String() {
		t.Fatalf("foreign and missing bodies differ: %q vs %q", foreign.Body.String(), missing.Body.String())
	}

	// The owner still sees it.
	owned := doJSON(t, r, http.MethodGet, fmt.Sprintf("/areas/%d", areaID), aliceToken, nil)
	if owned.Code != http.StatusOK {
		t.Fatalf("expected 200 for owned area, got %d", owned.Code)
	}
}

func TestListAreasAlphabetical(t *testing.T) {
	r := newTestEnv(t)

	registerUser(t, r, "alice@example.com", "pw1")
	token := loginUser(t, r, "alice@example.com", "pw1")

	for _, name := range []string{"Work", "Health", "Family"} {
		createArea(t, r, token, name)
	}

	w := doJSON(t, r, http.MethodGet, "/areas", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list areas: expected 200, got %d", w.Code)
	}

	var areas []struct {
		Name string `json:"name"`
	}
	decodeBody(t, w, &areas)

	want := []string{"Family", "Health", "Work"}
	if len(areas) != len(want) {
		t.Fatalf("expected %d areas, got %d", len(want), len(areas))
	}
	for i, name := range want {
		if areas[i].Name != name {
			t.Fatalf("expected area %d to be %q, got %q", i, name, areas[i].Name)
		}
	}
}

func TestUpdateAreaPartial(t *testing.T) {
	r := newTestEnv(t)

	registerUser(t, r, "alice@example.com", "pw1")
	token := loginUser(t, r, "alice@example.com", "pw1")

	areaID := createArea(t, r, token, "Health")

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/areas/%d", areaID), token, gin.H{
		"color": "#00ff00",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update color: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var area struct {
		Name  string  `json:"name"`
		Color *string `json:"color"`
	}
	decodeBody(t, w, &area)

	if area.Name != "Health" {
		t.Fatalf("expected untouched name to survive, got %q", area.Name)
	}
	if area.Color == nil || *area.Color != "#00ff00" {
		t.Fatalf("expected color #00ff00, got %v", area.Color)
	}

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/areas/%d", areaID), token, gin.H{
		"color": "chartreuse",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-hex color, got %d", w.Code)
	}
}

// Deleting an area takes its projects and their next actions with it
// but only unlinks one-shot tasks tagged with the area.
func TestDeleteAreaCascadesAndUnlinks(t *testing.T) {
	r := newTestEnv(t)

	registerUser(t, r, "alice@example.com", "pw1")
	token := loginUser(t, r, "alice@example.com", "pw1")

	areaID := createArea(t, r, token, "Health")
	projectID := createProject(t, r, token, areaID, "Gym")
	createNextAction(t, r, token, projectID, "Buy shoes")
	taskID := createOneShotTask(t, r, token, gin.H{"title": "Book checkup", "area_id": areaID})

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/areas/%d", areaID), token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete area: expected 204, got %d (%s)", w.Code, w.Body.String())
	}

	if w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/projects/%d", projectID), token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected project to be gone, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/one-shot-tasks/%d", taskID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected tagged task to survive area deletion, got %d", w.Code)
	}

	var task struct {
		AreaID *uint `json:"area_id"`
	}
	decodeBody(t, w, &task)

	if task.AreaID != nil {
		t.Fatalf("expected task's area link to be cleared, got %d", *task.AreaID)
	}
}
