package repository

import (
	"github.com/jobdesk/jobdesk/internal/model"
	"gorm.io/gorm"
)

// ApplicationRepository owns the (vacancy, applicant) pair entities:
// the application itself and its optional test result. The two multi-step
// mutations run inside one transaction so a crash cannot orphan either row.
type ApplicationRepository interface {
	Create(application *model.VacancyApplication) error
	CreateWithResult(application *model.VacancyApplication, result *model.ApplicantTestResult) error
	FindByPair(vacancyID, applicantID uint) (*model.VacancyApplication, error)
	UpdateStatus(application *model.VacancyApplication, status string) error
	DeleteWithResult(vacancyID, applicantID uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(application *model.VacancyApplication) error {
	return r.db.Create(application).Error
}

// CreateWithResult persists the screening-test result and the application as
// one unit.
func (r *applicationRepository) CreateWithResult(application *model.VacancyApplication, result *model.ApplicantTestResult) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		return tx.Create(application).Error
	})
}

func (r *applicationRepository) FindByPair(vacancyID, applicantID uint) (*model.VacancyApplication, error) {
	var application model.VacancyApplication
	err := r.db.
		Where("vacancy_id = ? AND applicant_id = ?", vacancyID, applicantID).
		First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) UpdateStatus(application *model.VacancyApplication, status string) error {
	return r.db.Model(application).Update("status", status).Error
}

// DeleteWithResult withdraws the application, removing the matching test
// result (if any) in the same transaction. Missing application reports
// gorm.ErrRecordNotFound; a missing result is fine, testless applications
// never had one.
func (r *applicationRepository) DeleteWithResult(vacancyID, applicantID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("vacancy_id = ? AND applicant_id = ?", vacancyID, applicantID).
			Delete(&model.VacancyApplication{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.
			Where("vacancy_id = ? AND applicant_id = ?", vacancyID, applicantID).
			Delete(&model.ApplicantTestResult{}).Error
	})
}
