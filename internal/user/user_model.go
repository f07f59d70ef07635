package user

import (
	"time"

	"gorm.io/gorm"
)

// Staff roles. Medical staff record assessments and manage the rule/weight
// configuration; coaches manage the athlete roster.
const (
	RoleMedis   = "medis"
	RolePelatih = "pelatih"
)

func ValidRole(role string) bool {
	return role == RoleMedis || role == RolePelatih
}

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;index" json:"role"`
	TeamID   uint   `gorm:"not null;index" json:"team_id"`
}

type RefreshToken struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}
