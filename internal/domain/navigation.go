package domain

// NavigationState is carried from one screen to the next across a redirect,
// e.g. from sign-up to login. Every field is optional and read once.
type NavigationState struct {
	UserName string
	Password string
	Message  string
}

// IsZero reports whether nothing was carried over.
func (n NavigationState) IsZero() bool {
	return n == NavigationState{}
}
