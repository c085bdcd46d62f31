package handlers

// ErrorResponse is the JSON error body shared by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Please try again
	Error string `json:"error"`
}

// User-facing failure messages. Authentication failures are
// deliberately generic so a wrong email and a wrong password are
// indistinguishable.
const (
	msgEmailExists        = "Email already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgTryAgain           = "Please try again"
)
