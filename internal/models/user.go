package models

type UserProfile struct {
	FullName string `json:"full_name"`
}

type User struct {
	ID          string       `json:"id"`
	FullName    string       `json:"full_name"`
	FirstName   string       `json:"first_name"`
	PhoneNumber string       `json:"phone_number"`
	Profile     *UserProfile `json:"profile,omitempty"`
}

// DisplayName picks the first non-empty label a user record may carry.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.Profile != nil && u.Profile.FullName != "" {
		return u.Profile.FullName
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.PhoneNumber
}
