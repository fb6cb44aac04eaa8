package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill represents a skill entry grouped by its raw category string.
// Two categories differing only in case are distinct groups.
type Skill struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null"`
	IconURL     *string   `json:"icon_url,omitempty" db:"icon_url" gorm:"type:text"`
	Proficiency int       `json:"proficiency" db:"proficiency" gorm:"not null;default:0"`
	Order       int       `json:"order" db:"display_order" gorm:"column:display_order;not null;default:0"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}
