package domain

// User is an account registered on this device. The password is kept and
// compared as plain text; authentication here is a convenience gate, not a
// security boundary.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// PublicUser is the user without credentials, safe to hand to the UI.
type PublicUser struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, FullName: u.FullName, Username: u.Username}
}
