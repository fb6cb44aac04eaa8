package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a portfolio project with its moderation flags
type Project struct {
	ID              uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title           string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string                      `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription *string                     `json:"long_description,omitempty" db:"long_description" gorm:"type:text"`
	Technologies    datatypes.JSONSlice[string] `json:"technologies" db:"technologies" gorm:"type:jsonb;not null"`
	Category        string                      `json:"category" db:"category" gorm:"type:text;not null"`
	ImageURL        *string                     `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	DemoURL         *string                     `json:"demo_url,omitempty" db:"demo_url" gorm:"type:text"`
	GithubURL       *string                     `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	IsFeatured      bool                        `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	IsPublished     bool                        `json:"is_published" db:"is_published" gorm:"not null;default:false"`
	ViewCount       int                         `json:"view_count" db:"view_count" gorm:"not null;default:0"`
	CreatedAt       time.Time                   `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                   `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`
}
