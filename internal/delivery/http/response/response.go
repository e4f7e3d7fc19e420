// Package response holds the JSON error body shapes shared by the HTTP
// error handler and middleware.
package response

// ErrorBody is the single-message error payload, e.g. {"message": "Forbidden"}.
type ErrorBody struct {
	Message string `json:"message"`
}

// ValidationBody is the payload for request validation failures. Errors holds
// one entry per failed field.
type ValidationBody struct {
	Errors any `json:"errors"`
}
