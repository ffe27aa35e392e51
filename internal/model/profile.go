package model

// AuthProvider identifies how the user signed in.
type AuthProvider string

const (
	ProviderKakao AuthProvider = "kakao"
	ProviderNaver AuthProvider = "naver"
	ProviderEmail AuthProvider = "email"
)

func (p AuthProvider) Valid() bool {
	switch p {
	case ProviderKakao, ProviderNaver, ProviderEmail:
		return true
	}
	return false
}

// UserProfile is the session-scoped agent profile. Absence of a persisted
// profile means offline/unauthenticated mode; the CRM keeps working either way.
type UserProfile struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Provider   AuthProvider `json:"provider"`
	IsLoggedIn bool         `json:"isLoggedIn"`
}
