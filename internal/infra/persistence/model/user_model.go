// Package model holds the GORM persistence models. They mirror the database
// tables and never leak past the repository layer.
package model

// UserModel mirrors the 'users' table. The unique index on email is the
// guarantee behind registration: a duplicate insert fails at the store, so
// two concurrent registrations with the same email cannot both commit.
type UserModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(100);not null"`
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(100);not null"` // bcrypt digest, never plaintext
	UserType string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
