package repository

import (
	"github.com/jobdesk/jobdesk/internal/model"
	"gorm.io/gorm"
)

type VacancyRepository interface {
	Create(vacancy *model.Vacancy) error
	FindByID(id uint) (*model.Vacancy, error)
	FindByIDWithTest(id uint) (*model.Vacancy, error)
	FindAllByJob(jobID uint) ([]model.Vacancy, error)
	Update(vacancy *model.Vacancy) error
	ReplaceTags(vacancy *model.Vacancy, tags []model.Tag) error
	Delete(id uint) error

	FindOpenNotAppliedBy(applicantID uint) ([]model.Vacancy, error)
	FindAppliedBy(applicantID uint) ([]model.Vacancy, error)
	FindForReview(employerID uint) ([]model.Vacancy, error)
}

type vacancyRepository struct {
	db *gorm.DB
}

func NewVacancyRepository(db *gorm.DB) VacancyRepository {
	return &vacancyRepository{db: db}
}

func (r *vacancyRepository) Create(vacancy *model.Vacancy) error {
	// Tag associations in vacancy.Tags are written to the join table as part
	// of the same insert.
	return r.db.Create(vacancy).Error
}

func (r *vacancyRepository) FindByID(id uint) (*model.Vacancy, error) {
	var vacancy model.Vacancy
	if err := r.db.First(&vacancy, id).Error; err != nil {
		return nil, err
	}
	return &vacancy, nil
}

func (r *vacancyRepository) FindByIDWithTest(id uint) (*model.Vacancy, error) {
	var vacancy model.Vacancy
	if err := r.db.Preload("Test.Questions").First(&vacancy, id).Error; err != nil {
		return nil, err
	}
	return &vacancy, nil
}

func (r *vacancyRepository) FindAllByJob(jobID uint) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	err := r.db.
		Where("job_id = ?", jobID).
		Preload("Tags").
		Preload("Test.Questions").
		Order("created_at desc").
		Find(&vacancies).Error
	if err != nil {
		return nil, err
	}
	return vacancies, nil
}

func (r *vacancyRepository) Update(vacancy *model.Vacancy) error {
	return r.db.Save(vacancy).Error
}

// ReplaceTags swaps the vacancy's whole tag set for the given one.
func (r *vacancyRepository) ReplaceTags(vacancy *model.Vacancy, tags []model.Tag) error {
	return r.db.Model(vacancy).Association("Tags").Replace(tags)
}

func (r *vacancyRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Vacancy{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindOpenNotAppliedBy lists open vacancies the applicant has not applied to,
// with everything the browsing page needs preloaded.
func (r *vacancyRepository) FindOpenNotAppliedBy(applicantID uint) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	err := r.db.
		Where("status = ?", model.VacancyStatusOpen).
		Where("NOT EXISTS (SELECT 1 FROM vacancy_applications a WHERE a.vacancy_id = vacancies.id AND a.applicant_id = ?)", applicantID).
		Preload("Tags").
		Preload("Test.Questions").
		Preload("Job").
		Order("created_at desc").
		Find(&vacancies).Error
	if err != nil {
		return nil, err
	}
	return vacancies, nil
}

// FindAppliedBy lists vacancies the applicant applied to, each carrying only
// that applicant's own application.
func (r *vacancyRepository) FindAppliedBy(applicantID uint) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	err := r.db.
		Where("EXISTS (SELECT 1 FROM vacancy_applications a WHERE a.vacancy_id = vacancies.id AND a.applicant_id = ?)", applicantID).
		Preload("Tags").
		Preload("Test.Questions").
		Preload("Job").
		Preload("Applications", "applicant_id = ?", applicantID).
		Order("created_at desc").
		Find(&vacancies).Error
	if err != nil {
		return nil, err
	}
	return vacancies, nil
}

// FindForReview lists the employer's vacancies that have at least one test
// result, with applications, applicants and their resumes for the review page.
func (r *vacancyRepository) FindForReview(employerID uint) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	err := r.db.
		Joins("JOIN jobs ON jobs.id = vacancies.job_id").
		Where("jobs.employer_id = ?", employerID).
		Where("EXISTS (SELECT 1 FROM applicant_test_results tr WHERE tr.vacancy_id = vacancies.id)").
		Preload("Applications.Applicant.Resume").
		Preload("TestResults").
		Order("vacancies.created_at desc").
		Find(&vacancies).Error
	if err != nil {
		return nil, err
	}
	return vacancies, nil
}
