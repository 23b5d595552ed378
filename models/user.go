package models

// AuthenticatedUser is a registered user account.
type AuthenticatedUser struct {
	ID          int64  `json:"id"`
	Identifier  string `json:"identifier,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	Superuser   bool   `json:"superuser,omitempty"`
}

// BuiltinUser is the request payload for creating a builtin user account.
type BuiltinUser struct {
	UserName    string `json:"userName"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email"`
	Affiliation string `json:"affiliation,omitempty"`
}

// BuiltinUserCreated is the payload returned when a builtin user is
// created: the user record plus its fresh API token.
type BuiltinUserCreated struct {
	User     AuthenticatedUser `json:"user"`
	APIToken string            `json:"apiToken,omitempty"`
}
