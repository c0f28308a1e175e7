package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

func subcategoryConsole(t *testing.T, mutate func(mux *http.ServeMux)) *console {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/subCategory/getSubCategoriesSubAdmin", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{{
			"_id": "sc1", "name": "Starters", "restaurant_id": "r1",
		}})
	})
	if mutate != nil {
		mutate(mux)
	}

	c := newConsole(t, mux)
	c.signIn(t)
	return c
}

func listSubcategories(t *testing.T, c *console) []models.Subcategory {
	t.Helper()
	w := c.do(t, http.MethodGet, "/subcategories", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 list, got %d: %s", w.Code, w.Body.String())
	}
	var subs []models.Subcategory
	decodeBody(t, w, &subs)
	return subs
}

func TestSubcategoryListParsesRefShapes(t *testing.T) {
	c := subcategoryConsole(t, nil)

	subs := listSubcategories(t, c)
	if len(subs) != 1 {
		t.Fatalf("expected one row, got %+v", subs)
	}
	// The restaurant reference arrives as a bare id string here.
	if subs[0].Restaurant.ID != "r1" {
		t.Fatalf("expected restaurant ref parsed, got %+v", subs[0].Restaurant)
	}
}

func TestSubcategoryCreate(t *testing.T) {
	c := subcategoryConsole(t, func(mux *http.ServeMux) {
		mux.HandleFunc("POST /api/subCategory/add", func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseMultipartForm(32 << 20); err != nil {
				t.Fatal(err)
			}
			if r.FormValue("name") != "Desserts" || r.FormValue("restaurant_id") != "r1" {
				t.Fatalf("unexpected form: %v", r.MultipartForm.Value)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"_id": "sc2", "name": "Desserts", "restaurant_id": "r1",
			})
		})
	})
	listSubcategories(t, c)

	// Missing name fails locally.
	body, contentType := multipartBody(t, map[string]string{"restaurant_id": "r1"})
	w := c.do(t, http.MethodPost, "/subcategories", contentType, body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
	var invalid struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, w, &invalid)
	if invalid.Errors["name"] != "Name is required." {
		t.Fatalf("unexpected errors %v", invalid.Errors)
	}

	body, contentType = multipartBody(t, map[string]string{"name": "Desserts", "restaurant_id": "r1"})
	w = c.do(t, http.MethodPost, "/subcategories", contentType, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	if subs := listSubcategories(t, c); len(subs) != 2 {
		t.Fatalf("expected the confirmed row appended, got %+v", subs)
	}
}

func TestSubcategoryDeleteRemovesRowAfterConfirm(t *testing.T) {
	c := subcategoryConsole(t, func(mux *http.ServeMux) {
		mux.HandleFunc("DELETE /api/subCategory/delete/sc1", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{}"))
		})
	})
	listSubcategories(t, c)

	w := c.do(t, http.MethodDelete, "/subcategories/sc1", "", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if subs := listSubcategories(t, c); len(subs) != 0 {
		t.Fatalf("expected row removed, got %+v", subs)
	}
}
