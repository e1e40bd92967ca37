package models

// User represents a registered traveller. Email is the unique, case-sensitive
// identity key and doubles as the token subject.
type User struct {
	// UserID is the surrogate identifier assigned by the database.
	UserID int64 `json:"id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// Name, Address and Phone are optional profile fields.
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of the register and login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries the editable profile fields. All three fields are
// written on update; absent fields are stored as empty strings.
type ProfileUpdate struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
