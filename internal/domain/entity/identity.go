package entity

// Identity is the verified caller identity extracted from a bearer token.
// It is attached to the request context by the auth middleware and consumed
// by handlers; it is never persisted.
type Identity struct {
	UserID int64
	Email  string
}
