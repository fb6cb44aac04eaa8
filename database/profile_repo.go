package database

import (
	"errors"

	"github.com/Frabbi727/mine-portfolio/models"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Get returns the single profile row, or nil if it has not been provisioned.
// The row is addressed by its fixed key, never by a first-row scan.
func (r *ProfileRepo) Get() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", models.ProfileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update writes the profile row in place. It never inserts: when the row is
// missing the caller sees zero rows updated and the surfaces degrade to an
// empty-state display.
func (r *ProfileRepo) Update(profile *models.Profile) error {
	profile.ID = models.ProfileID
	return r.db.Save(profile).Error
}
