package model

type User struct {
	ID        string `json:"id" bson:"id"`
	Email     string `json:"email" bson:"email"`
	Name      string `json:"name" bson:"name"`
	Password  string `json:"-" bson:"password"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

// PublicUser is the wire shape of a user; the password hash never leaves
// the persistence layer.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

// PasswordReset is a single-use token. Expires is RFC3339 UTC; the token is
// invalid once used or past expiry, whichever comes first.
type PasswordReset struct {
	UserID  string `json:"user_id" bson:"user_id"`
	Token   string `json:"token" bson:"token"`
	Expires string `json:"expires" bson:"expires"`
	Used    bool   `json:"used" bson:"used"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
