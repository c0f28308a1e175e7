package upstream

import (
	"context"
	"net/http"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

// GetRestaurant fetches the restaurant owned by the signed-in sub-admin,
// subcategories and menu items included.
func (c *Client) GetRestaurant(ctx context.Context) (*models.Restaurant, error) {
	var out models.Restaurant
	if err := c.get(ctx, "api/subadmin/getRestaurantByUserId", &out); err != nil {
		return nil, fallback(err, "Failed to load restaurant")
	}
	if out.ID == "" {
		return nil, malformed("restaurant payload missing _id")
	}
	return &out, nil
}

// UpdateRestaurant sends the multipart edit. The update route answers with
// a message envelope and, on newer deployments, the updated document; nil
// is returned when only the acknowledgement arrived and the caller should
// reconcile from its draft. The route path keeps its historical spelling.
func (c *Client) UpdateRestaurant(ctx context.Context, id string, draft models.RestaurantDraft) (*models.Restaurant, error) {
	taxRate, err := coerceFloat("tax_rate", draft.TaxRate)
	if err != nil {
		return nil, err
	}
	rating, err := coerceFloat("rating", draft.Rating)
	if err != nil {
		return nil, err
	}
	latitude, err := coerceFloat("latitude", draft.Latitude)
	if err != nil {
		return nil, err
	}
	longitude, err := coerceFloat("longitude", draft.Longitude)
	if err != nil {
		return nil, err
	}

	fields := []formField{
		{"name", draft.Name},
		{"address", draft.Address},
		{"category_id", draft.CategoryID},
		{"details", draft.Details},
		{"opening_time", draft.OpeningTime},
		{"closing_time", draft.ClosingTime},
		{"tax_rate", taxRate},
		{"rating", rating},
		{"latitude", latitude},
		{"longitude", longitude},
	}

	body, contentType, err := buildForm(fields, draft.Image)
	if err != nil {
		return nil, err
	}

	var out struct {
		Message string             `json:"message"`
		Data    *models.Restaurant `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "api/resturant/update/"+id, body, contentType, &out); err != nil {
		return nil, fallback(err, "Failed to update restaurant.")
	}

	if out.Data != nil && out.Data.ID != "" {
		return out.Data, nil
	}
	if out.Message == "Restaurant updated successfully" {
		return nil, nil
	}
	msg := out.Message
	if msg == "" {
		msg = "Failed to update restaurant."
	}
	return nil, &Error{Kind: KindUpstream, Message: msg}
}

// ListCategories returns every restaurant category for the edit form's
// selector.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.get(ctx, "api/categories/getAllCategories", &out); err != nil {
		return nil, fallback(err, "Failed to load categories")
	}
	return out, nil
}
