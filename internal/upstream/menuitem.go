package upstream

import (
	"context"
	"net/http"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

// ListMenuItems returns the menu items of the signed-in sub-admin's
// restaurant.
func (c *Client) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var out []models.MenuItem
	if err := c.get(ctx, "api/menuItem/getMenuItemsByUser", &out); err != nil {
		return nil, fallback(err, "Failed to fetch menu items")
	}
	return out, nil
}

func (c *Client) AddMenuItem(ctx context.Context, draft models.MenuItemDraft) (*models.MenuItem, error) {
	return c.sendMenuItem(ctx, http.MethodPost, "api/menuItem/add", draft, "Failed to add menu item.")
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, draft models.MenuItemDraft) (*models.MenuItem, error) {
	return c.sendMenuItem(ctx, http.MethodPut, "api/menuItem/update/"+id, draft, "Failed to update menu item")
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	if err := c.delete(ctx, "api/menuItem/delete/"+id); err != nil {
		return fallback(err, "Failed to delete menu item")
	}
	return nil
}

func (c *Client) sendMenuItem(ctx context.Context, method, path string, draft models.MenuItemDraft, failMsg string) (*models.MenuItem, error) {
	price, err := coerceInt("price", draft.Price)
	if err != nil {
		return nil, err
	}

	fields := []formField{
		{"name", draft.Name},
		{"price", price},
		{"description", draft.Description},
		{"subCategory_id", draft.SubcategoryID},
	}
	body, contentType, err := buildForm(fields, draft.Image)
	if err != nil {
		return nil, err
	}

	var out models.MenuItem
	if err := c.do(ctx, method, path, body, contentType, &out); err != nil {
		return nil, fallback(err, failMsg)
	}
	if out.ID == "" {
		return nil, malformed("menu item payload missing _id")
	}
	return &out, nil
}
