package handlers

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/editor"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/upstream"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/validate"
)

// RestaurantView mirrors the restaurant profile page: one cached entity,
// the category selector, and the edit modal behind it.
type RestaurantView struct {
	client *upstream.Client

	mu         sync.Mutex
	current    *models.Restaurant
	categories []models.Category

	editor *editor.Editor[models.RestaurantDraft, *models.Restaurant]
}

func NewRestaurantView(client *upstream.Client) *RestaurantView {
	v := &RestaurantView{client: client}
	v.editor = editor.New(editor.Config[models.RestaurantDraft, *models.Restaurant]{
		Validate: validate.Restaurant,
		Submit:   v.submitEdit,
		Merge:    v.applyUpdate,
	})
	return v
}

// Get fetches the restaurant and the category list once and serves the
// cached copy afterwards; ?refresh=1 forces a refetch.
func (v *RestaurantView) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "restaurant")

		v.mu.Lock()
		cached := v.current
		categories := v.categories
		v.mu.Unlock()

		if cached == nil || c.Query("refresh") != "" {
			restaurant, err := v.client.GetRestaurant(c.Request.Context())
			if err != nil {
				respondUpstream(c, "restaurant", err)
				return
			}
			cats, err := v.client.ListCategories(c.Request.Context())
			if err != nil {
				respondUpstream(c, "restaurant", err)
				return
			}

			v.mu.Lock()
			v.current = restaurant
			v.categories = cats
			cached = restaurant
			categories = cats
			v.mu.Unlock()
		}

		c.JSON(http.StatusOK, gin.H{"restaurant": cached, "categories": categories})
	}
}

// OpenEdit seeds the edit draft from the cached restaurant. The seed runs
// on the trailing edge of the debounce window, so hammering the edit
// button opens the form once.
func (v *RestaurantView) OpenEdit() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "restaurant-edit")

		v.mu.Lock()
		current := v.current
		v.mu.Unlock()

		if current == nil || current.ID == "" {
			respondWithError(c, http.StatusConflict, "restaurant-edit", "Cannot edit: Invalid restaurant data")
			return
		}

		v.editor.Open(current.ID, draftFromRestaurant(current))
		c.JSON(http.StatusAccepted, gin.H{"status": "opening"})
	}
}

// Edit returns the open draft so the form can render current values and
// the last submit error, if any.
func (v *RestaurantView) Edit() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "restaurant-edit")

		draft, ok := v.editor.Draft()
		if !ok {
			respondWithError(c, http.StatusNotFound, "restaurant-edit", "no edit in progress")
			return
		}
		c.JSON(http.StatusOK, gin.H{"draft": draft, "error": v.editor.LastError()})
	}
}

// Update submits the edit form. An invalid draft never reaches the
// upstream; a failed submit keeps the entered values for correction.
func (v *RestaurantView) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "restaurant-update")

		draft, err := parseRestaurantForm(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "restaurant-update", err.Error())
			return
		}

		updated, fieldErrs, err := v.editor.Submit(c.Request.Context(), draft)
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			return
		}
		if err != nil {
			respondUpstream(c, "restaurant-update", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"restaurant": updated})
	}
}

func (v *RestaurantView) CloseEdit() gin.HandlerFunc {
	return func(c *gin.Context) {
		v.editor.Close()
		c.Status(http.StatusNoContent)
	}
}

func (v *RestaurantView) submitEdit(ctx context.Context, id string, draft models.RestaurantDraft) (*models.Restaurant, error) {
	updated, err := v.client.UpdateRestaurant(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		return updated, nil
	}
	// Message-only acknowledgement: reconcile the cached copy from the
	// values the upstream just accepted.
	return v.restaurantFromDraft(id, draft), nil
}

func (v *RestaurantView) applyUpdate(updated *models.Restaurant) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = updated
}

func (v *RestaurantView) restaurantFromDraft(id string, d models.RestaurantDraft) *models.Restaurant {
	v.mu.Lock()
	defer v.mu.Unlock()

	merged := models.Restaurant{}
	if v.current != nil {
		merged = *v.current
	}
	merged.ID = id
	merged.Name = d.Name
	merged.Address = d.Address
	merged.Details = d.Details
	merged.OpeningTime = d.OpeningTime
	merged.ClosingTime = d.ClosingTime
	merged.Category = models.Ref{ID: d.CategoryID, Name: v.categoryName(d.CategoryID)}
	merged.TaxRate, _ = strconv.ParseFloat(d.TaxRate, 64)
	merged.Rating, _ = strconv.ParseFloat(d.Rating, 64)

	lat, _ := strconv.ParseFloat(d.Latitude, 64)
	lon, _ := strconv.ParseFloat(d.Longitude, 64)
	merged.Location = models.GeoPoint{Type: merged.Location.Type, Coordinates: []float64{lat, lon}}

	return &merged
}

// categoryName resolves a selector value against the cached category
// list. Callers hold v.mu.
func (v *RestaurantView) categoryName(id string) string {
	for _, cat := range v.categories {
		if cat.ID == id {
			return cat.Name
		}
	}
	return ""
}

func draftFromRestaurant(r *models.Restaurant) models.RestaurantDraft {
	return models.RestaurantDraft{
		Name:        r.Name,
		Address:     r.Address,
		CategoryID:  r.Category.ID,
		Details:     r.Details,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		TaxRate:     strconv.FormatFloat(r.TaxRate, 'f', -1, 64),
		Rating:      strconv.FormatFloat(r.Rating, 'f', -1, 64),
		Latitude:    strconv.FormatFloat(r.Location.Latitude(), 'f', -1, 64),
		Longitude:   strconv.FormatFloat(r.Location.Longitude(), 'f', -1, 64),
		ImageURL:    r.Image,
	}
}
