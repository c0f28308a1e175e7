package models

import "time"

type MenuItem struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Subcategory Ref       `json:"subCategory_id"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

func (m MenuItem) Identity() string { return m.ID }
