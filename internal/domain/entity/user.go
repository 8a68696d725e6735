package entity

import "time"

// User representa una cuenta registrada. Inmutable tras el signup salvo el password.
type User struct {
	ID           string
	Name         string
	Email        string // único global
	PasswordHash string // bcrypt, opaco para el dominio
	CreatedAt    time.Time
}
