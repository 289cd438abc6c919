package repository

// CreateOptions holds the parameters for creating a user. Email must already
// be normalised and PasswordHash already computed.
type CreateOptions struct {
	Name         string
	Email        string
	PasswordHash string
}
