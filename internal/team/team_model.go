// team/model.go
package team

import (
	"gorm.io/gorm"
)

// Team groups the staff accounts and the athlete roster they monitor.
type Team struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
}
