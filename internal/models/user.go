package models

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name,omitempty"`
	PasswordHash string `json:"-"` // never serialized to clients
}
