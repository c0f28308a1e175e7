package upstream

import (
	"context"
	"net/http"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

// ListSubcategories returns the subcategories belonging to the signed-in
// sub-admin's restaurant.
func (c *Client) ListSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	var out []models.Subcategory
	if err := c.get(ctx, "api/subCategory/getSubCategoriesSubAdmin", &out); err != nil {
		return nil, fallback(err, "Failed to fetch subcategories. Please try again.")
	}
	return out, nil
}

// ListAllSubcategories returns every subcategory on the platform.
func (c *Client) ListAllSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	var out []models.Subcategory
	if err := c.get(ctx, "api/subCategory/all", &out); err != nil {
		return nil, fallback(err, "Failed to fetch subcategories. Please try again.")
	}
	return out, nil
}

// ListUnassignedSubcategories returns subcategories not yet attached to a
// restaurant.
func (c *Client) ListUnassignedSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	var out []models.Subcategory
	if err := c.get(ctx, "api/subCategory/getUnassignedSubCategories", &out); err != nil {
		return nil, fallback(err, "Failed to fetch subcategories. Please try again.")
	}
	return out, nil
}

func (c *Client) AddSubcategory(ctx context.Context, draft models.SubcategoryDraft) (*models.Subcategory, error) {
	return c.sendSubcategory(ctx, http.MethodPost, "api/subCategory/add", draft, "Failed to add subcategory.")
}

func (c *Client) UpdateSubcategory(ctx context.Context, id string, draft models.SubcategoryDraft) (*models.Subcategory, error) {
	return c.sendSubcategory(ctx, http.MethodPut, "api/subCategory/update/"+id, draft, "Failed to update subcategory.")
}

func (c *Client) DeleteSubcategory(ctx context.Context, id string) error {
	if err := c.delete(ctx, "api/subCategory/delete/"+id); err != nil {
		return fallback(err, "Failed to delete subcategory.")
	}
	return nil
}

func (c *Client) sendSubcategory(ctx context.Context, method, path string, draft models.SubcategoryDraft, failMsg string) (*models.Subcategory, error) {
	fields := []formField{
		{"name", draft.Name},
		{"restaurant_id", draft.RestaurantID},
	}
	body, contentType, err := buildForm(fields, draft.Image)
	if err != nil {
		return nil, err
	}

	var out models.Subcategory
	if err := c.do(ctx, method, path, body, contentType, &out); err != nil {
		return nil, fallback(err, failMsg)
	}
	if out.ID == "" {
		return nil, malformed("subcategory payload missing _id")
	}
	return &out, nil
}
