package repository

import (
	"github.com/jobdesk/jobdesk/internal/model"
	"gorm.io/gorm"
)

type ResumeRepository interface {
	Create(resume *model.Resume) error
	FindByApplicantID(applicantID uint) (*model.Resume, error)
	Update(resume *model.Resume) error
	DeleteByApplicantID(applicantID uint) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(resume *model.Resume) error {
	return r.db.Create(resume).Error
}

func (r *resumeRepository) FindByApplicantID(applicantID uint) (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.Where("applicant_id = ?", applicantID).First(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) Update(resume *model.Resume) error {
	return r.db.Save(resume).Error
}

func (r *resumeRepository) DeleteByApplicantID(applicantID uint) error {
	res := r.db.Where("applicant_id = ?", applicantID).Delete(&model.Resume{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
