package domain

// User is the signed-in identity resolved from an access token.
type User struct {
	ID    string
	Email string
}
