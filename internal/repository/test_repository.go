package repository

import (
	"github.com/jobdesk/jobdesk/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByVacancyID(vacancyID uint) (*model.Test, error)
	FindQuestionsByVacancyID(vacancyID uint) ([]model.Question, error)
	DeleteByVacancyID(vacancyID uint) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	return r.db.Create(test).Error
}

func (r *testRepository) FindByVacancyID(vacancyID uint) (*model.Test, error) {
	var test model.Test
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Where("vacancy_id = ?", vacancyID).
		First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// FindQuestionsByVacancyID resolves the question set through the vacancy's
// test in one query; scoring works off this list.
func (r *testRepository) FindQuestionsByVacancyID(vacancyID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Joins("JOIN tests ON tests.id = questions.test_id").
		Where("tests.vacancy_id = ?", vacancyID).
		Order("questions.id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *testRepository) DeleteByVacancyID(vacancyID uint) error {
	res := r.db.Where("vacancy_id = ?", vacancyID).Delete(&model.Test{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
