package entity

import "time"

// Category agrupa servicios del salón (corte, color, uñas...).
type Category struct {
	ID          string
	Name        string // único
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
