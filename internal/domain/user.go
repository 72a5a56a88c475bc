package domain

// User is a dashboard login. The password hash never leaves the credential
// store path; handlers only ever see the authentication outcome.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}
