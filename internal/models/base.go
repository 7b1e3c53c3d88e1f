package models

import "time"

// Base contains common columns for all tables.
//
// Monetary amounts throughout the models are stored as int64 cents to
// avoid floating-point drift on balance arithmetic.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
