package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del perfil de estilista. Se crea INACTIVE (borrador) y solo la
// aprobación del admin lo pasa a ACTIVE.
const (
	StylistStatusActive   = "ACTIVE"
	StylistStatusInactive = "INACTIVE"
)

// Stylist extiende 1:1 a un User con rol STYLIST. Los campos de saldo y chat
// son de otros subsistemas; aquí solo se persisten.
type Stylist struct {
	ID              string
	UserID          string // único: a lo sumo un perfil por usuario
	Specialization  string
	Experience      int // años
	Rating          float64
	Status          string // ACTIVE, INACTIVE
	ProfilePicture  string
	AllowChat       bool
	EarningsBalance decimal.Decimal
	PendingPayout   decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
