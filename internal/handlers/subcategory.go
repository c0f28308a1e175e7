package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/editor"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/listview"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/upstream"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/validate"
)

// SubcategoriesView mirrors the subcategories table. The platform-wide
// and unassigned listings are pass-throughs; only the sub-admin's own
// rows are cached and edited here.
type SubcategoriesView struct {
	client *upstream.Client
	cache  *listview.Cache[models.Subcategory]
	editor *editor.Editor[models.SubcategoryDraft, *models.Subcategory]
}

func NewSubcategoriesView(client *upstream.Client) *SubcategoriesView {
	v := &SubcategoriesView{
		client: client,
		cache:  listview.New[models.Subcategory](),
	}
	v.editor = editor.New(editor.Config[models.SubcategoryDraft, *models.Subcategory]{
		Validate: validate.Subcategory,
		Submit:   v.submitEdit,
		Merge: func(sub *models.Subcategory) {
			v.cache.Upsert(*sub)
		},
	})
	return v
}

func (v *SubcategoriesView) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "subcategories")

		if !v.cache.Loaded() || c.Query("refresh") != "" {
			subs, err := v.client.ListSubcategories(c.Request.Context())
			if err != nil {
				respondUpstream(c, "subcategories", err)
				return
			}
			v.cache.Fill(subs)
		}
		c.JSON(http.StatusOK, v.cache.Rows())
	}
}

func (v *SubcategoriesView) ListAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "subcategories-all")

		subs, err := v.client.ListAllSubcategories(c.Request.Context())
		if err != nil {
			respondUpstream(c, "subcategories-all", err)
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}

func (v *SubcategoriesView) ListUnassigned() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "subcategories-unassigned")

		subs, err := v.client.ListUnassignedSubcategories(c.Request.Context())
		if err != nil {
			respondUpstream(c, "subcategories-unassigned", err)
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}

func (v *SubcategoriesView) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "subcategory-add")

		draft, err := parseSubcategoryForm(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "subcategory-add", err.Error())
			return
		}

		if fieldErrs := validate.Subcategory(draft); len(fieldErrs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			return
		}

		sub, err := v.client.AddSubcategory(c.Request.Context(), draft)
		if err != nil {
			respondUpstream(c, "subcategory-add", err)
			return
		}

		v.cache.Upsert(*sub)
		c.JSON(http.StatusCreated, sub)
	}
}

func (v *SubcategoriesView) OpenEdit() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "subcategory-edit")

		id := c.Param("id")
		row, ok := v.cache.Get(id)
		if !ok {
			respondWithError(c, http.StatusNotFound, "subcategory-edit", "subcategory not found")
			return
		}

		v.editor.Open(id, models.SubcategoryDraft{
			Name:         row.Name,
			RestaurantID: row.Restaurant.ID,
			ImageURL:     row.Image,
		})
		c.JSON(http.StatusAccepted, gin.H{"status": "opening"})
	}
}

func (v *SubcategoriesView) Edit() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "subcategory-edit")

		draft, ok := v.editor.Draft()
		if !ok {
			respondWithError(c, http.StatusNotFound, "subcategory-edit", "no edit in progress")
			return
		}
		c.JSON(http.StatusOK, gin.H{"draft": draft, "error": v.editor.LastError()})
	}
}

func (v *SubcategoriesView) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "subcategory-update")

		id := c.Param("id")
		if open := v.editor.EntityID(); open != id {
			respondWithError(c, http.StatusConflict, "subcategory-update", "a different edit is in progress")
			return
		}

		draft, err := parseSubcategoryForm(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "subcategory-update", err.Error())
			return
		}

		sub, fieldErrs, err := v.editor.Submit(c.Request.Context(), draft)
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			return
		}
		if err != nil {
			respondUpstream(c, "subcategory-update", err)
			return
		}

		c.JSON(http.StatusOK, sub)
	}
}

func (v *SubcategoriesView) CloseEdit() gin.HandlerFunc {
	return func(c *gin.Context) {
		v.editor.Close()
		c.Status(http.StatusNoContent)
	}
}

func (v *SubcategoriesView) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "subcategory-delete")

		id := c.Param("id")
		if err := v.client.DeleteSubcategory(c.Request.Context(), id); err != nil {
			respondUpstream(c, "subcategory-delete", err)
			return
		}

		v.cache.Remove(id)
		c.Status(http.StatusNoContent)
	}
}

func (v *SubcategoriesView) submitEdit(ctx context.Context, id string, draft models.SubcategoryDraft) (*models.Subcategory, error) {
	return v.client.UpdateSubcategory(ctx, id, draft)
}
