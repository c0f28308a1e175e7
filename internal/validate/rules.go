package validate

import (
	"strings"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

var restaurantMessages = map[string]map[string]string{
	"name":         {"required": "Restaurant name is required."},
	"address":      {"required": "Address is required."},
	"category_id":  {"required": "Category is required."},
	"opening_time": {"required": "Opening time is required.", "hhmm": "Invalid opening time format (HH:MM)."},
	"closing_time": {"required": "Closing time is required.", "hhmm": "Invalid closing time format (HH:MM)."},
	"tax_rate":     {"required": "Tax rate is required.", "taxrate": "Invalid tax rate (e.g., 10 or 10.5)."},
	"rating":       {"required": "Rating is required.", "rating": "Rating must be between 0 and 5."},
	"latitude":     {"required": "Latitude is required.", "latitude": "Latitude must be between -90 and 90."},
	"longitude":    {"required": "Longitude is required.", "longitude": "Longitude must be between -180 and 180."},
}

var menuItemMessages = map[string]map[string]string{
	"name":           {"required": "Name is required.", "dishname": "Name can only contain letters and spaces."},
	"price":          {"required": "Price is required.", "posint": "Price must be a positive whole number."},
	"subCategory_id": {"required": "Subcategory is required."},
}

var subcategoryMessages = map[string]map[string]string{
	"name":          {"required": "Name is required."},
	"restaurant_id": {"required": "Restaurant is required."},
}

// Restaurant checks an edit draft against the restaurant form rules.
func Restaurant(d models.RestaurantDraft) Errors {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.TaxRate = strings.TrimSpace(d.TaxRate)
	d.Rating = strings.TrimSpace(d.Rating)
	d.Latitude = strings.TrimSpace(d.Latitude)
	d.Longitude = strings.TrimSpace(d.Longitude)
	d.OpeningTime = strings.TrimSpace(d.OpeningTime)
	d.ClosingTime = strings.TrimSpace(d.ClosingTime)

	errs := collect(v.Struct(d), restaurantMessages)
	if d.Image != nil {
		if msg := imageMessage(d.Image); msg != "" {
			errs["image"] = msg
		}
	}
	return errs
}

// MenuItem checks an add/edit draft against the menu item form rules.
func MenuItem(d models.MenuItemDraft) Errors {
	d.Name = strings.TrimSpace(d.Name)
	d.Price = strings.TrimSpace(d.Price)

	errs := collect(v.Struct(d), menuItemMessages)
	if d.Image != nil {
		if msg := imageMessage(d.Image); msg != "" {
			errs["image"] = msg
		}
	}
	return errs
}

// Subcategory checks an add/edit draft against the subcategory form rules.
func Subcategory(d models.SubcategoryDraft) Errors {
	d.Name = strings.TrimSpace(d.Name)

	errs := collect(v.Struct(d), subcategoryMessages)
	if d.Image != nil {
		if msg := imageMessage(d.Image); msg != "" {
			errs["image"] = msg
		}
	}
	return errs
}
