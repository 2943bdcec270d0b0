package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           uuid.UUID `json:"user_id" db:"id"`            // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserPatch carries the optional fields of a profile update.
// PasswordHash is already hashed when it reaches the repository.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether no field is set.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil
}

// Profile is a user joined with its stats aggregate.
// swagger:model Profile
type Profile struct {
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	Name              string    `json:"name" db:"name"`
	Email             string    `json:"email" db:"email"`
	Initials          string    `json:"initials" db:"-"`
	TotalXP           int       `json:"total_xp" db:"total_xp"`
	MissionsCompleted int       `json:"missions_completed" db:"missions_completed"`
	Level             int       `json:"level" db:"-"`
	Experience        int       `json:"experience" db:"-"`
}

// Fill computes the derived profile fields.
func (p *Profile) Fill() {
	p.Initials = Initials(p.Name)
	p.Level, p.Experience = Level(p.TotalXP)
}

// Initials returns up to two upper-case letters taken from the first
// and last words of name, used as avatar text.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	first := []rune(words[0])
	out := []rune{unicode.ToUpper(first[0])}
	if len(words) > 1 {
		last := []rune(words[len(words)-1])
		out = append(out, unicode.ToUpper(last[0]))
	}
	return string(out)
}
