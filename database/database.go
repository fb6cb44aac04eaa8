package database

import (
	"github.com/Frabbi727/mine-portfolio/models"
	"gorm.io/gorm"
)

type Database struct {
	db                    *gorm.DB
	projectRepo           *ProjectRepo
	skillRepo             *SkillRepo
	contactSubmissionRepo *ContactSubmissionRepo
	profileRepo           *ProfileRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                    db,
		projectRepo:           NewProjectRepo(db),
		skillRepo:             NewSkillRepo(db),
		contactSubmissionRepo: NewContactSubmissionRepo(db),
		profileRepo:           NewProfileRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ContactSubmissionRepo() *ContactSubmissionRepo {
	return d.contactSubmissionRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

// Migrate creates or updates the schema for every entity table. The profile
// row itself is provisioned out of band; Migrate never inserts rows.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.Project{},
		&models.Skill{},
		&models.ContactSubmission{},
		&models.Profile{},
	)
}
