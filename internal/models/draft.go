package models

// ImageFile is an in-memory upload attachment. Drafts seeded from an
// existing row carry the remote image URL instead, and only send a file
// part when the user picked a new one.
type ImageFile struct {
	Name    string
	Content []byte
}

// Drafts hold form values exactly as entered; numeric fields stay strings
// until validation passes and the transport layer coerces them.

type RestaurantDraft struct {
	Name        string `form:"name" validate:"required"`
	Address     string `form:"address" validate:"required"`
	CategoryID  string `form:"category_id" validate:"required"`
	Details     string `form:"details"`
	OpeningTime string `form:"opening_time" validate:"required,hhmm"`
	ClosingTime string `form:"closing_time" validate:"required,hhmm"`
	TaxRate     string `form:"tax_rate" validate:"required,taxrate"`
	Rating      string `form:"rating" validate:"required,rating"`
	Latitude    string `form:"latitude" validate:"required,latitude"`
	Longitude   string `form:"longitude" validate:"required,longitude"`
	ImageURL    string `form:"-"`
	Image       *ImageFile
}

type MenuItemDraft struct {
	Name          string `form:"name" validate:"required,dishname"`
	Price         string `form:"price" validate:"required,posint"`
	Description   string `form:"description"`
	SubcategoryID string `form:"subCategory_id" validate:"required"`
	ImageURL      string `form:"-"`
	Image         *ImageFile
}

type SubcategoryDraft struct {
	Name         string `form:"name" validate:"required"`
	RestaurantID string `form:"restaurant_id" validate:"required"`
	ImageURL     string `form:"-"`
	Image        *ImageFile
}
