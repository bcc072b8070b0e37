package models

// User mirrors the users table.
type User struct {
	ID           int64
	Username     string
	FullName     string
	PasswordHash string
	Role         string
	IsActive     bool
}
