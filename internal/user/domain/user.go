package domain

import (
	"time"

	"github.com/mercadito/retail-api/pkg/optional"
)

// User represents a registered customer.
type User struct {
	ID               uint      `json:"user_id" gorm:"primaryKey;column:user_id"`
	Email            string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash     string    `json:"-" gorm:"size:255;not null"` // Never expose the hash in JSON
	FirstName        *string   `json:"first_name" gorm:"size:100"`
	LastName         *string   `json:"last_name" gorm:"size:100"`
	PhoneNumber      *string   `json:"phone_number" gorm:"size:20"`
	Address          *string   `json:"address" gorm:"type:text"`
	RegistrationDate time.Time `json:"registration_date" gorm:"not null"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// CreateUser carries the caller-supplied fields for a new user. The identity
// and registration date are assigned by the service, never by the caller.
type CreateUser struct {
	Email        string  `json:"email"`
	PasswordHash string  `json:"password_hash"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	PhoneNumber  *string `json:"phone_number"`
	Address      *string `json:"address"`
}

// UserChanges is the user change-set: one slot per mutable column. The
// identity and registration date have no slot and can never be merged.
type UserChanges struct {
	Email        optional.Value[string]  `json:"email"`
	PasswordHash optional.Value[string]  `json:"password_hash"`
	FirstName    optional.Value[*string] `json:"first_name"`
	LastName     optional.Value[*string] `json:"last_name"`
	PhoneNumber  optional.Value[*string] `json:"phone_number"`
	Address      optional.Value[*string] `json:"address"`
}

// ApplyTo merges the set slots into u, leaving unset fields untouched.
// Persistence is the repository's job, not the merge's.
func (c UserChanges) ApplyTo(u *User) {
	optional.Apply(&u.Email, c.Email)
	optional.Apply(&u.PasswordHash, c.PasswordHash)
	optional.Apply(&u.FirstName, c.FirstName)
	optional.Apply(&u.LastName, c.LastName)
	optional.Apply(&u.PhoneNumber, c.PhoneNumber)
	optional.Apply(&u.Address, c.Address)
}

// Changes converts a full replacement payload into a change-set with every
// slot set, so fields omitted from a PUT body overwrite with their defaults.
func (r CreateUser) Changes() UserChanges {
	return UserChanges{
		Email:        optional.Of(r.Email),
		PasswordHash: optional.Of(r.PasswordHash),
		FirstName:    optional.Of(r.FirstName),
		LastName:     optional.Of(r.LastName),
		PhoneNumber:  optional.Of(r.PhoneNumber),
		Address:      optional.Of(r.Address),
	}
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll(limit, offset int) ([]User, error)
	Save(user *User) error
	Delete(id uint) error
}
