package repository

import (
	"github.com/jobdesk/jobdesk/internal/model"
	"gorm.io/gorm"
)

type EmployerRepository interface {
	Create(employer *model.Employer) error
	FindByID(id uint) (*model.Employer, error)
	FindByEmail(email string) (*model.Employer, error)
	FindByIDWithPortfolio(id uint) (*model.Employer, error)
}

type employerRepository struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &employerRepository{db: db}
}

func (r *employerRepository) Create(employer *model.Employer) error {
	return r.db.Create(employer).Error
}

func (r *employerRepository) FindByID(id uint) (*model.Employer, error) {
	var employer model.Employer
	if err := r.db.First(&employer, id).Error; err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *employerRepository) FindByEmail(email string) (*model.Employer, error) {
	var employer model.Employer
	if err := r.db.Where("email = ?", email).First(&employer).Error; err != nil {
		return nil, err
	}
	return &employer, nil
}

// FindByIDWithPortfolio loads the employer with jobs, their vacancies and the
// applications under each vacancy, as needed by the analytics view.
func (r *employerRepository) FindByIDWithPortfolio(id uint) (*model.Employer, error) {
	var employer model.Employer
	err := r.db.
		Preload("Jobs.Vacancies.Applications").
		First(&employer, id).Error
	if err != nil {
		return nil, err
	}
	return &employer, nil
}
