package entity

import "time"

// User representa un operador del sistema (POS, bodega, administración).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
