package models

// User represents an account that can sign in and book rooms.
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	Role         string `bson:"role" json:"role"` // "admin" or "user"
	CreatedAt    int64  `bson:"created_at" json:"created_at"`
	UpdatedAt    int64  `bson:"updated_at" json:"updated_at"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// RegisterUserRequest is the payload for creating an account.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=7"`
	Role     string `json:"role"`
}

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token together with the account profile
// so the client can route to the right dashboard without a second call.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
