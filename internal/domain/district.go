package domain

import (
	"time"
)

// District is the geographic area a doctor practises in.
type District struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
