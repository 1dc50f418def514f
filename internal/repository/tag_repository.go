package repository

import (
	"github.com/jobdesk/jobdesk/internal/model"
	"gorm.io/gorm"
)

type TagRepository interface {
	FindAll() ([]model.Tag, error)
	FindByIDs(ids []uint) ([]model.Tag, error)
	FindNamesByVacancyIDs(vacancyIDs []uint) ([]string, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) FindAll() ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FindByIDs(ids []uint) ([]model.Tag, error) {
	var tags []model.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindNamesByVacancyIDs returns the de-duplicated tag names across the given
// vacancies.
func (r *tagRepository) FindNamesByVacancyIDs(vacancyIDs []uint) ([]string, error) {
	names := []string{}
	if len(vacancyIDs) == 0 {
		return names, nil
	}
	err := r.db.Model(&model.Tag{}).
		Distinct("tags.name").
		Joins("JOIN vacancy_tags vt ON vt.tag_id = tags.id").
		Where("vt.vacancy_id IN ?", vacancyIDs).
		Order("tags.name asc").
		Pluck("tags.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
