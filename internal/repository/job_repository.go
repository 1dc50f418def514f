package repository

import (
	"github.com/jobdesk/jobdesk/internal/model"
	"gorm.io/gorm"
)

type JobRepository interface {
	Create(job *model.Job) error
	FindByID(id uint) (*model.Job, error)
	FindAllByEmployer(employerID uint) ([]model.Job, error)
	Update(job *model.Job) error
	Delete(id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindAllByEmployer(employerID uint) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.Where("employer_id = ?", employerID).Order("created_at desc").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

// Delete removes the job; vacancies underneath go with it via the FK cascade.
func (r *jobRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Job{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
