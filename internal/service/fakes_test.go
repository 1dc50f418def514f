package service

import (
	"github.com/jobdesk/jobdesk/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes. They enforce the same uniqueness and
// not-found behavior the gorm implementations surface, including the
// all-or-nothing semantics of the paired mutations.

type pairKey struct {
	vacancyID   uint
	applicantID uint
}

type fakeApplicationRepo struct {
	applications map[pairKey]*model.VacancyApplication
	results      map[pairKey]*model.ApplicantTestResult
	nextID       uint
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[pairKey]*model.VacancyApplication),
		results:      make(map[pairKey]*model.ApplicantTestResult),
	}
}

func (f *fakeApplicationRepo) Create(application *model.VacancyApplication) error {
	key := pairKey{application.VacancyID, application.ApplicantID}
	if _, exists := f.applications[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	application.ID = f.nextID
	f.applications[key] = application
	return nil
}

func (f *fakeApplicationRepo) CreateWithResult(application *model.VacancyApplication, result *model.ApplicantTestResult) error {
	key := pairKey{application.VacancyID, application.ApplicantID}
	if _, exists := f.applications[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	if _, exists := f.results[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	if err := f.Create(application); err != nil {
		return err
	}
	f.results[key] = result
	return nil
}

func (f *fakeApplicationRepo) FindByPair(vacancyID, applicantID uint) (*model.VacancyApplication, error) {
	application, ok := f.applications[pairKey{vacancyID, applicantID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return application, nil
}

func (f *fakeApplicationRepo) UpdateStatus(application *model.VacancyApplication, status string) error {
	stored, ok := f.applications[pairKey{application.VacancyID, application.ApplicantID}]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = status
	return nil
}

func (f *fakeApplicationRepo) DeleteWithResult(vacancyID, applicantID uint) error {
	key := pairKey{vacancyID, applicantID}
	if _, ok := f.applications[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.applications, key)
	delete(f.results, key)
	return nil
}

type fakeVacancyRepo struct {
	vacancies map[uint]*model.Vacancy
}

func newFakeVacancyRepo(vacancies ...*model.Vacancy) *fakeVacancyRepo {
	repo := &fakeVacancyRepo{vacancies: make(map[uint]*model.Vacancy)}
	for _, v := range vacancies {
		repo.vacancies[v.ID] = v
	}
	return repo
}

func (f *fakeVacancyRepo) Create(vacancy *model.Vacancy) error {
	f.vacancies[vacancy.ID] = vacancy
	return nil
}

func (f *fakeVacancyRepo) FindByID(id uint) (*model.Vacancy, error) {
	return f.FindByIDWithTest(id)
}

func (f *fakeVacancyRepo) FindByIDWithTest(id uint) (*model.Vacancy, error) {
	vacancy, ok := f.vacancies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return vacancy, nil
}

func (f *fakeVacancyRepo) FindAllByJob(jobID uint) ([]model.Vacancy, error)  { return nil, nil }
func (f *fakeVacancyRepo) Update(vacancy *model.Vacancy) error               { return nil }
func (f *fakeVacancyRepo) ReplaceTags(v *model.Vacancy, t []model.Tag) error { return nil }
func (f *fakeVacancyRepo) Delete(id uint) error                              { return nil }
func (f *fakeVacancyRepo) FindOpenNotAppliedBy(applicantID uint) ([]model.Vacancy, error) {
	return nil, nil
}
func (f *fakeVacancyRepo) FindAppliedBy(applicantID uint) ([]model.Vacancy, error) { return nil, nil }
func (f *fakeVacancyRepo) FindForReview(employerID uint) ([]model.Vacancy, error)  { return nil, nil }

type fakeTestRepo struct {
	questionsByVacancy map[uint][]model.Question
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{questionsByVacancy: make(map[uint][]model.Question)}
}

func (f *fakeTestRepo) Create(test *model.Test) error { return nil }
func (f *fakeTestRepo) FindByVacancyID(vacancyID uint) (*model.Test, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeTestRepo) FindQuestionsByVacancyID(vacancyID uint) ([]model.Question, error) {
	return f.questionsByVacancy[vacancyID], nil
}
func (f *fakeTestRepo) DeleteByVacancyID(vacancyID uint) error { return nil }

type fakeResumeRepo struct {
	resumes map[uint]*model.Resume
}

func newFakeResumeRepo(applicantIDs ...uint) *fakeResumeRepo {
	repo := &fakeResumeRepo{resumes: make(map[uint]*model.Resume)}
	for _, id := range applicantIDs {
		repo.resumes[id] = &model.Resume{ID: id, ApplicantID: id, PersonalInfo: "info"}
	}
	return repo
}

func (f *fakeResumeRepo) Create(resume *model.Resume) error {
	if _, exists := f.resumes[resume.ApplicantID]; exists {
		return gorm.ErrDuplicatedKey
	}
	f.resumes[resume.ApplicantID] = resume
	return nil
}

func (f *fakeResumeRepo) FindByApplicantID(applicantID uint) (*model.Resume, error) {
	resume, ok := f.resumes[applicantID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return resume, nil
}

func (f *fakeResumeRepo) Update(resume *model.Resume) error { return nil }
func (f *fakeResumeRepo) DeleteByApplicantID(applicantID uint) error {
	if _, ok := f.resumes[applicantID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.resumes, applicantID)
	return nil
}

type fakeApplicantRepo struct {
	applicants map[uint]*model.Applicant
	byEmail    map[string]*model.Applicant
}

func newFakeApplicantRepo(applicants ...*model.Applicant) *fakeApplicantRepo {
	repo := &fakeApplicantRepo{
		applicants: make(map[uint]*model.Applicant),
		byEmail:    make(map[string]*model.Applicant),
	}
	for _, a := range applicants {
		repo.applicants[a.ID] = a
		repo.byEmail[a.Email] = a
	}
	return repo
}

func (f *fakeApplicantRepo) Create(applicant *model.Applicant) error {
	if _, exists := f.byEmail[applicant.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	applicant.ID = uint(len(f.applicants) + 1)
	f.applicants[applicant.ID] = applicant
	f.byEmail[applicant.Email] = applicant
	return nil
}

func (f *fakeApplicantRepo) FindByID(id uint) (*model.Applicant, error) {
	applicant, ok := f.applicants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return applicant, nil
}

func (f *fakeApplicantRepo) FindByEmail(email string) (*model.Applicant, error) {
	applicant, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return applicant, nil
}

func (f *fakeApplicantRepo) FindByIDWithActivity(id uint) (*model.Applicant, error) {
	return f.FindByID(id)
}

type fakeEmployerRepo struct {
	employers map[uint]*model.Employer
	byEmail   map[string]*model.Employer
}

func newFakeEmployerRepo(employers ...*model.Employer) *fakeEmployerRepo {
	repo := &fakeEmployerRepo{
		employers: make(map[uint]*model.Employer),
		byEmail:   make(map[string]*model.Employer),
	}
	for _, e := range employers {
		repo.employers[e.ID] = e
		repo.byEmail[e.Email] = e
	}
	return repo
}

func (f *fakeEmployerRepo) Create(employer *model.Employer) error {
	if _, exists := f.byEmail[employer.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	employer.ID = uint(len(f.employers) + 1)
	f.employers[employer.ID] = employer
	f.byEmail[employer.Email] = employer
	return nil
}

func (f *fakeEmployerRepo) FindByID(id uint) (*model.Employer, error) {
	employer, ok := f.employers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return employer, nil
}

func (f *fakeEmployerRepo) FindByEmail(email string) (*model.Employer, error) {
	employer, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return employer, nil
}

func (f *fakeEmployerRepo) FindByIDWithPortfolio(id uint) (*model.Employer, error) {
	return f.FindByID(id)
}

type fakeTagRepo struct {
	namesByVacancy map[uint][]string
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{namesByVacancy: make(map[uint][]string)}
}

func (f *fakeTagRepo) FindAll() ([]model.Tag, error)             { return nil, nil }
func (f *fakeTagRepo) FindByIDs(ids []uint) ([]model.Tag, error) { return nil, nil }

func (f *fakeTagRepo) FindNamesByVacancyIDs(vacancyIDs []uint) ([]string, error) {
	seen := make(map[string]bool)
	names := []string{}
	for _, id := range vacancyIDs {
		for _, name := range f.namesByVacancy[id] {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names, nil
}
