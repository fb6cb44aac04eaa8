package database

import (
	"errors"
	"time"

	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project, newest first. Both surfaces use it: the
// admin list shows drafts, and the public projection filters in memory
// because its filter options are derived from the full set.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil if no row exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// SetPublished writes an explicit published value guarded by the updated_at
// timestamp the caller read. Zero matched rows means the row changed (or was
// deleted) after that read, and the write is refused with ErrStaleRecord.
func (r *ProjectRepo) SetPublished(id uuid.UUID, value bool, readAt time.Time) error {
	return r.setFlag(id, "is_published", value, readAt)
}

// SetFeatured writes an explicit featured value with the same guard as
// SetPublished. The two facets are independent; any combination is legal.
func (r *ProjectRepo) SetFeatured(id uuid.UUID, value bool, readAt time.Time) error {
	return r.setFlag(id, "is_featured", value, readAt)
}

func (r *ProjectRepo) setFlag(id uuid.UUID, column string, value bool, readAt time.Time) error {
	res := r.db.Model(&models.Project{}).
		Where("id = ? AND updated_at = ?", id, readAt).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrStaleRecord
	}
	return nil
}

// Count returns the total number of projects.
func (r *ProjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

// CountPublished returns the number of publicly visible projects.
func (r *ProjectRepo) CountPublished() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("is_published = ?", true).Count(&count).Error
	return count, err
}

// SumViewCounts returns the total view count across all projects.
func (r *ProjectRepo) SumViewCounts() (int64, error) {
	var total int64
	err := r.db.Model(&models.Project{}).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	return total, err
}
