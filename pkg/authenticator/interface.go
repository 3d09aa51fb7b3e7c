package authenticator

type TokenEngine[T any] interface {
	// Generate issues a signed token carrying obj for the given subject.
	Generate(sub string, obj T) (string, error)

	// Verify checks the token signature and expiration, then returns the
	// carried object.
	Verify(token string) (T, error)
}
