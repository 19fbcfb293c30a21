package domain

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session pairs the bearer token with the authenticated user profile.
// At most one Session is live in the process; the session manager owns it.
type Session struct {
	Token string
	User  User
}

func (s Session) Valid() bool { return s.Token != "" }
