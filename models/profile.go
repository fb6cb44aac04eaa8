package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileID is the fixed key of the single profile row. Updates always
// target this id; nothing in the application ever inserts a second row.
var ProfileID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Profile is the site owner's header record. Exactly one row exists,
// keyed by ProfileID.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	FullName  string    `json:"full_name" db:"full_name" gorm:"type:text;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Bio       string    `json:"bio" db:"bio" gorm:"type:text;not null"`
	AboutMe   *string   `json:"about_me,omitempty" db:"about_me" gorm:"type:text"`
	Email     string    `json:"email" db:"email" gorm:"type:text"`
	Github    *string   `json:"github,omitempty" db:"github" gorm:"type:text"`
	Linkedin  *string   `json:"linkedin,omitempty" db:"linkedin" gorm:"type:text"`
	Location  *string   `json:"location,omitempty" db:"location" gorm:"type:text"`
	AvatarURL *string   `json:"avatar_url,omitempty" db:"avatar_url" gorm:"type:text"`
	ResumeURL *string   `json:"resume_url,omitempty" db:"resume_url" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`
}
