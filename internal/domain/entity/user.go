// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record for an account holder. The PasswordHash field
// holds the bcrypt digest of the login password and must never be serialized
// outward; delivery-layer DTOs expose only the safe fields.
type User struct {
	ID           int64     // Numeric identifier, generated by the database.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Email        string    // Unique login identifier, stored lower-cased.
	PasswordHash string    // Bcrypt digest of the password. Never leaves the backend.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
