package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/editor"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/listview"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/upstream"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/validate"
)

// MenuItemsView mirrors the menu items table: a fetch-once row cache, the
// add form, and the edit modal.
type MenuItemsView struct {
	client *upstream.Client
	cache  *listview.Cache[models.MenuItem]
	editor *editor.Editor[models.MenuItemDraft, *models.MenuItem]
}

func NewMenuItemsView(client *upstream.Client) *MenuItemsView {
	v := &MenuItemsView{
		client: client,
		cache:  listview.New[models.MenuItem](),
	}
	v.editor = editor.New(editor.Config[models.MenuItemDraft, *models.MenuItem]{
		Validate: validate.MenuItem,
		Submit:   v.submitEdit,
		Merge: func(item *models.MenuItem) {
			v.cache.Upsert(*item)
		},
	})
	return v
}

func (v *MenuItemsView) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "menuitems")

		if !v.cache.Loaded() || c.Query("refresh") != "" {
			items, err := v.client.ListMenuItems(c.Request.Context())
			if err != nil {
				respondUpstream(c, "menuitems", err)
				return
			}
			v.cache.Fill(items)
		}
		c.JSON(http.StatusOK, v.cache.Rows())
	}
}

// Create validates the add form before any network call; the new row is
// appended to the cache only after the upstream confirms it.
func (v *MenuItemsView) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "menuitem-add")

		draft, err := parseMenuItemForm(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "menuitem-add", err.Error())
			return
		}

		if fieldErrs := validate.MenuItem(draft); len(fieldErrs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			return
		}

		item, err := v.client.AddMenuItem(c.Request.Context(), draft)
		if err != nil {
			respondUpstream(c, "menuitem-add", err)
			return
		}

		v.cache.Upsert(*item)
		c.JSON(http.StatusCreated, item)
	}
}

func (v *MenuItemsView) OpenEdit() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "menuitem-edit")

		id := c.Param("id")
		row, ok := v.cache.Get(id)
		if !ok {
			respondWithError(c, http.StatusNotFound, "menuitem-edit", "menu item not found")
			return
		}

		v.editor.Open(id, draftFromMenuItem(row))
		c.JSON(http.StatusAccepted, gin.H{"status": "opening"})
	}
}

func (v *MenuItemsView) Edit() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "menuitem-edit")

		draft, ok := v.editor.Draft()
		if !ok {
			respondWithError(c, http.StatusNotFound, "menuitem-edit", "no edit in progress")
			return
		}
		c.JSON(http.StatusOK, gin.H{"draft": draft, "error": v.editor.LastError()})
	}
}

func (v *MenuItemsView) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "menuitem-update")

		id := c.Param("id")
		if open := v.editor.EntityID(); open != id {
			respondWithError(c, http.StatusConflict, "menuitem-update", "a different edit is in progress")
			return
		}

		draft, err := parseMenuItemForm(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "menuitem-update", err.Error())
			return
		}

		item, fieldErrs, err := v.editor.Submit(c.Request.Context(), draft)
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			return
		}
		if err != nil {
			respondUpstream(c, "menuitem-update", err)
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

func (v *MenuItemsView) CloseEdit() gin.HandlerFunc {
	return func(c *gin.Context) {
		v.editor.Close()
		c.Status(http.StatusNoContent)
	}
}

// Delete removes the row from the cache only after the upstream delete
// resolves; a failed delete leaves the table untouched.
func (v *MenuItemsView) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "menuitem-delete")

		id := c.Param("id")
		if err := v.client.DeleteMenuItem(c.Request.Context(), id); err != nil {
			respondUpstream(c, "menuitem-delete", err)
			return
		}

		v.cache.Remove(id)
		c.Status(http.StatusNoContent)
	}
}

func (v *MenuItemsView) submitEdit(ctx context.Context, id string, draft models.MenuItemDraft) (*models.MenuItem, error) {
	return v.client.UpdateMenuItem(ctx, id, draft)
}

func draftFromMenuItem(item models.MenuItem) models.MenuItemDraft {
	return models.MenuItemDraft{
		Name:          item.Name,
		Price:         strconv.Itoa(item.Price),
		Description:   item.Description,
		SubcategoryID: item.Subcategory.ID,
		ImageURL:      item.Image,
	}
}
