package models

import "time"

type Category struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// GeoPoint mirrors the upstream's GeoJSON location field. The console keeps
// the upstream's coordinate order: index 0 is latitude, index 1 longitude.
type GeoPoint struct {
	Type        string    `json:"type,omitempty"`
	Coordinates []float64 `json:"coordinates"`
}

func (g GeoPoint) Latitude() float64 {
	if len(g.Coordinates) > 0 {
		return g.Coordinates[0]
	}
	return 0
}

func (g GeoPoint) Longitude() float64 {
	if len(g.Coordinates) > 1 {
		return g.Coordinates[1]
	}
	return 0
}

type Restaurant struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	Address       string        `json:"address"`
	Category      Ref           `json:"category_id"`
	Details       string        `json:"details,omitempty"`
	OpeningTime   string        `json:"opening_time"`
	ClosingTime   string        `json:"closing_time"`
	TaxRate       float64       `json:"tax_rate"`
	Rating        float64       `json:"rating"`
	Location      GeoPoint      `json:"location"`
	Image         string        `json:"image,omitempty"`
	SubAdminName  string        `json:"subAdminName,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
	CreatedAt     time.Time     `json:"createdAt,omitempty"`
}

func (r Restaurant) Identity() string { return r.ID }

type Subcategory struct {
	ID         string     `json:"_id"`
	Name       string     `json:"name"`
	Image      string     `json:"image,omitempty"`
	Restaurant Ref        `json:"restaurant_id,omitempty"`
	MenuItems  []MenuItem `json:"menuItems,omitempty"`
	CreatedAt  time.Time  `json:"createdAt,omitempty"`
}

func (s Subcategory) Identity() string { return s.ID }
