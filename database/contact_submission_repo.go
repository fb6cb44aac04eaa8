package database

import (
	"errors"

	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactSubmissionRepo struct {
	db *gorm.DB
}

func NewContactSubmissionRepo(db *gorm.DB) *ContactSubmissionRepo {
	return &ContactSubmissionRepo{db}
}

// FindAll returns all contact submissions, newest first.
func (r *ContactSubmissionRepo) FindAll() ([]*models.ContactSubmission, error) {
	var submissions []*models.ContactSubmission
	err := r.db.Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

// FindByID returns a submission by its ID, or nil if no row exists.
func (r *ContactSubmissionRepo) FindByID(id uuid.UUID) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	err := r.db.First(&submission, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// Add inserts a new contact submission. Callers must leave IsRead false;
// new submissions always start unread.
func (r *ContactSubmissionRepo) Add(submission *models.ContactSubmission) error {
	submission.IsRead = false
	return r.db.Create(submission).Error
}

// SetRead writes an explicit read value guarded by the value the caller
// read. The read bit is the row's only mutable state, so it doubles as the
// concurrency token: a concurrent flip leaves zero matched rows and the
// write is refused with ErrStaleRecord.
func (r *ContactSubmissionRepo) SetRead(id uuid.UUID, value bool, readValue bool) error {
	res := r.db.Model(&models.ContactSubmission{}).
		Where("id = ? AND is_read = ?", id, readValue).
		Update("is_read", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrStaleRecord
	}
	return nil
}

// Delete removes a contact submission by id. Terminal; there is no undo.
func (r *ContactSubmissionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactSubmission{}, "id = ?", id).Error
}

// CountUnread returns the number of submissions still marked unread.
func (r *ContactSubmissionRepo) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactSubmission{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}
