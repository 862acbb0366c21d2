package model

// AdminUser is the staff account behind an API token.
type AdminUser struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// DisplayName returns the name of the user or its email when unnamed.
func (u *AdminUser) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
