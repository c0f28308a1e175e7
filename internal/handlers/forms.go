package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

const maxFormMemory = 32 << 20

/*
=======================
  FORM PARSERS
=======================

The edit forms arrive as multipart bodies: every text field is read as a
string (numeric coercion happens after validation, in the transport
layer), and the image part is optional.
*/

func parseRestaurantForm(c *gin.Context) (models.RestaurantDraft, error) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
		return models.RestaurantDraft{}, err
	}

	draft := models.RestaurantDraft{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Address:     strings.TrimSpace(c.PostForm("address")),
		CategoryID:  strings.TrimSpace(c.PostForm("category_id")),
		Details:     strings.TrimSpace(c.PostForm("details")),
		OpeningTime: strings.TrimSpace(c.PostForm("opening_time")),
		ClosingTime: strings.TrimSpace(c.PostForm("closing_time")),
		TaxRate:     strings.TrimSpace(c.PostForm("tax_rate")),
		Rating:      strings.TrimSpace(c.PostForm("rating")),
		Latitude:    strings.TrimSpace(c.PostForm("latitude")),
		Longitude:   strings.TrimSpace(c.PostForm("longitude")),
	}

	image, err := formImage(c)
	if err != nil {
		return models.RestaurantDraft{}, err
	}
	draft.Image = image
	return draft, nil
}

func parseMenuItemForm(c *gin.Context) (models.MenuItemDraft, error) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
		return models.MenuItemDraft{}, err
	}

	draft := models.MenuItemDraft{
		Name:          strings.TrimSpace(c.PostForm("name")),
		Price:         strings.TrimSpace(c.PostForm("price")),
		Description:   strings.TrimSpace(c.PostForm("description")),
		SubcategoryID: strings.TrimSpace(c.PostForm("subCategory_id")),
	}

	image, err := formImage(c)
	if err != nil {
		return models.MenuItemDraft{}, err
	}
	draft.Image = image
	return draft, nil
}

func parseSubcategoryForm(c *gin.Context) (models.SubcategoryDraft, error) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
		return models.SubcategoryDraft{}, err
	}

	draft := models.SubcategoryDraft{
		Name:         strings.TrimSpace(c.PostForm("name")),
		RestaurantID: strings.TrimSpace(c.PostForm("restaurant_id")),
	}

	image, err := formImage(c)
	if err != nil {
		return models.SubcategoryDraft{}, err
	}
	draft.Image = image
	return draft, nil
}

// formImage reads the optional image part into memory. A missing part is
// not an error; the error string check covers framework version drift on
// the missing-file sentinel.
func formImage(c *gin.Context) (*models.ImageFile, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || strings.Contains(err.Error(), "no such file") {
			return nil, nil
		}
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &models.ImageFile{Name: file.Filename, Content: content}, nil
}
