package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Admin is a seed-provisioned store operator. Admins never self-register and
// carry no profile fields.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// User is a self-registered customer account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the result of a credential lookup across both collections.
// Exactly one of Admin or User is set, matching Role.
type Identity struct {
	Role  string
	Admin *Admin
	User  *User
}

func (i *Identity) ID() string {
	if i.Role == RoleAdmin {
		return i.Admin.ID
	}
	return i.User.ID
}

func (i *Identity) Email() string {
	if i.Role == RoleAdmin {
		return i.Admin.Email
	}
	return i.User.Email
}

func (i *Identity) PasswordHash() string {
	if i.Role == RoleAdmin {
		return i.Admin.PasswordHash
	}
	return i.User.PasswordHash
}
