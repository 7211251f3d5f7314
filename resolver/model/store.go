package model

import (
	"fmt"
	"strings"
	"time"
)

type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Chain     string    `json:"chain"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZIP       string    `json:"zip"`
	Lat       *float64  `json:"lat,omitempty"`
	Lon       *float64  `json:"lon,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullAddress renders "street, city, ST 12345", skipping the parts that are empty.
func (s *Store) FullAddress() string {
	parts := make([]string, 0, 3)
	if s.Address != "" {
		parts = append(parts, s.Address)
	}
	if s.City != "" {
		parts = append(parts, s.City)
	}
	region := strings.TrimSpace(fmt.Sprintf("%s %s", s.State, s.ZIP))
	if region != "" {
		parts = append(parts, region)
	}
	return strings.Join(parts, ", ")
}
