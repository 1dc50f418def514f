package repository

import (
	"github.com/jobdesk/jobdesk/internal/model"
	"gorm.io/gorm"
)

type ApplicantRepository interface {
	Create(applicant *model.Applicant) error
	FindByID(id uint) (*model.Applicant, error)
	FindByEmail(email string) (*model.Applicant, error)
	FindByIDWithActivity(id uint) (*model.Applicant, error)
}

type applicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

func (r *applicantRepository) Create(applicant *model.Applicant) error {
	return r.db.Create(applicant).Error
}

func (r *applicantRepository) FindByID(id uint) (*model.Applicant, error) {
	var applicant model.Applicant
	if err := r.db.First(&applicant, id).Error; err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *applicantRepository) FindByEmail(email string) (*model.Applicant, error) {
	var applicant model.Applicant
	if err := r.db.Where("email = ?", email).First(&applicant).Error; err != nil {
		return nil, err
	}
	return &applicant, nil
}

// FindByIDWithActivity loads the applicant with applications and test
// results, as needed by the analytics view.
func (r *applicantRepository) FindByIDWithActivity(id uint) (*model.Applicant, error) {
	var applicant model.Applicant
	err := r.db.
		Preload("Applications").
		Preload("TestResults").
		First(&applicant, id).Error
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}
