// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// UserType distinguishes the kinds of accounts in Teamed.
type UserType string

const (
	UserTypeFreelancer     UserType = "freelancer"
	UserTypeClient         UserType = "client"
	UserTypeProjectManager UserType = "project_manager"
)

// User is the core identity entity. PasswordHash always holds a bcrypt
// digest; the plaintext submitted at registration is never stored.
type User struct {
	ID           int64    // System-generated identifier, immutable once assigned.
	Name         string   // Display name.
	Email        string   // Login identifier, unique across all users.
	PasswordHash string   // One-way digest of the user's password.
	UserType     UserType // Role of the account within Teamed.
}

// PublicUser is the external shape of a user record. It carries everything a
// client may see; the password hash stays inside the service layer.
type PublicUser struct {
	ID       int64
	Name     string
	Email    string
	UserType UserType
}

// Public strips the credential digest from a user record.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		UserType: u.UserType,
	}
}
