package service

import (
	"testing"

	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testVacancyID   uint = 1
	testApplicantID uint = 7
)

// fourQuestions builds a screening test where option 1 is always correct.
func fourQuestions() []model.Question {
	return []model.Question{
		{ID: 10, TestID: 1, CorrectAnswer: 1},
		{ID: 11, TestID: 1, CorrectAnswer: 1},
		{ID: 12, TestID: 1, CorrectAnswer: 1},
		{ID: 13, TestID: 1, CorrectAnswer: 1},
	}
}

func newApplicationFixture(withTest bool) (*fakeApplicationRepo, ApplicationService) {
	vacancy := &model.Vacancy{ID: testVacancyID, JobID: 1, Title: "Backend Engineer", Status: model.VacancyStatusOpen}
	testRepo := newFakeTestRepo()
	if withTest {
		vacancy.Test = &model.Test{ID: 1, VacancyID: testVacancyID}
		testRepo.questionsByVacancy[testVacancyID] = fourQuestions()
	}

	applicationRepo := newFakeApplicationRepo()
	svc := NewApplicationService(
		applicationRepo,
		newFakeVacancyRepo(vacancy),
		testRepo,
		newFakeResumeRepo(testApplicantID),
		NewScoringService(),
	)
	return applicationRepo, svc
}

func answersWithCorrect(n int) []dto.SubmittedAnswerDTO {
	answers := make([]dto.SubmittedAnswerDTO, 0, 4)
	for i, q := range fourQuestions() {
		chosen := 2
		if i < n {
			chosen = q.CorrectAnswer
		}
		answers = append(answers, dto.SubmittedAnswerDTO{QuestionID: q.ID, AnswerNumber: chosen})
	}
	return answers
}

func TestApplyWithoutTestCreatesPendingApplication(t *testing.T) {
	repo, svc := newApplicationFixture(false)

	result, err := svc.Apply(testApplicantID, dto.ApplyRequest{VacancyID: testVacancyID})
	require.NoError(t, err)

	assert.Equal(t, model.ApplicationStatusPending, result.Status)
	assert.Nil(t, result.Score)

	stored, err := repo.FindByPair(testVacancyID, testApplicantID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusPending, stored.Status)
}

func TestApplyScoresAndStoresResult(t *testing.T) {
	repo, svc := newApplicationFixture(true)

	result, err := svc.Apply(testApplicantID, dto.ApplyRequest{
		VacancyID: testVacancyID,
		Answers:   answersWithCorrect(2),
	})
	require.NoError(t, err)

	require.NotNil(t, result.Score)
	assert.InDelta(t, 50.0, *result.Score, 1e-9)
	assert.Equal(t, model.ApplicationStatusPending, result.Status)

	stored := repo.results[pairKey{testVacancyID, testApplicantID}]
	require.NotNil(t, stored)
	assert.InDelta(t, 50.0, stored.Score, 1e-9)
}

func TestApplyBelowThresholdStillCreatesFailedApplication(t *testing.T) {
	repo, svc := newApplicationFixture(true)

	result, err := svc.Apply(testApplicantID, dto.ApplyRequest{
		VacancyID: testVacancyID,
		Answers:   answersWithCorrect(1),
	})
	require.NoError(t, err)

	require.NotNil(t, result.Score)
	assert.InDelta(t, 25.0, *result.Score, 1e-9)
	assert.Equal(t, model.ApplicationStatusFailed, result.Status)

	stored, err := repo.FindByPair(testVacancyID, testApplicantID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusFailed, stored.Status)
}

func TestApplyMissingAnswersCountAsIncorrect(t *testing.T) {
	_, svc := newApplicationFixture(true)

	// Two correct answers submitted, two questions left unanswered.
	result, err := svc.Apply(testApplicantID, dto.ApplyRequest{
		VacancyID: testVacancyID,
		Answers:   answersWithCorrect(2)[:2],
	})
	require.NoError(t, err)

	require.NotNil(t, result.Score)
	assert.InDelta(t, 50.0, *result.Score, 1e-9)
}

func TestApplyTwiceIsConflict(t *testing.T) {
	_, svc := newApplicationFixture(false)

	_, err := svc.Apply(testApplicantID, dto.ApplyRequest{VacancyID: testVacancyID})
	require.NoError(t, err)

	_, err = svc.Apply(testApplicantID, dto.ApplyRequest{VacancyID: testVacancyID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestApplyUnknownVacancyIsNotFound(t *testing.T) {
	_, svc := newApplicationFixture(false)

	_, err := svc.Apply(testApplicantID, dto.ApplyRequest{VacancyID: 999})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestApplyWithoutResumeIsConflict(t *testing.T) {
	vacancy := &model.Vacancy{ID: testVacancyID, Status: model.VacancyStatusOpen}
	svc := NewApplicationService(
		newFakeApplicationRepo(),
		newFakeVacancyRepo(vacancy),
		newFakeTestRepo(),
		newFakeResumeRepo(),
		NewScoringService(),
	)

	_, err := svc.Apply(testApplicantID, dto.ApplyRequest{VacancyID: testVacancyID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestApplyToTestWithoutQuestionsIsNotFound(t *testing.T) {
	vacancy := &model.Vacancy{
		ID:     testVacancyID,
		Status: model.VacancyStatusOpen,
		Test:   &model.Test{ID: 1, VacancyID: testVacancyID},
	}
	svc := NewApplicationService(
		newFakeApplicationRepo(),
		newFakeVacancyRepo(vacancy),
		newFakeTestRepo(),
		newFakeResumeRepo(testApplicantID),
		NewScoringService(),
	)

	_, err := svc.Apply(testApplicantID, dto.ApplyRequest{VacancyID: testVacancyID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDecideAcceptsAndRejects(t *testing.T) {
	repo, svc := newApplicationFixture(false)

	_, err := svc.Apply(testApplicantID, dto.ApplyRequest{VacancyID: testVacancyID})
	require.NoError(t, err)

	decided, err := svc.Decide(dto.DecisionRequest{VacancyID: testVacancyID, ApplicantID: testApplicantID, Accept: true})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusAccepted, decided.Status)

	stored, err := repo.FindByPair(testVacancyID, testApplicantID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusAccepted, stored.Status)
}

func TestDecideDoesNotOverwriteTerminalState(t *testing.T) {
	_, svc := newApplicationFixture(false)

	_, err := svc.Apply(testApplicantID, dto.ApplyRequest{VacancyID: testVacancyID})
	require.NoError(t, err)

	_, err = svc.Decide(dto.DecisionRequest{VacancyID: testVacancyID, ApplicantID: testApplicantID, Accept: false})
	require.NoError(t, err)

	_, err = svc.Decide(dto.DecisionRequest{VacancyID: testVacancyID, ApplicantID: testApplicantID, Accept: true})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestDecideUnknownApplicationIsNotFound(t *testing.T) {
	_, svc := newApplicationFixture(false)

	_, err := svc.Decide(dto.DecisionRequest{VacancyID: testVacancyID, ApplicantID: testApplicantID, Accept: true})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestWithdrawRemovesApplicationAndResult(t *testing.T) {
	repo, svc := newApplicationFixture(true)

	_, err := svc.Apply(testApplicantID, dto.ApplyRequest{
		VacancyID: testVacancyID,
		Answers:   answersWithCorrect(4),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.results[pairKey{testVacancyID, testApplicantID}])

	require.NoError(t, svc.Withdraw(testVacancyID, testApplicantID))

	_, err = repo.FindByPair(testVacancyID, testApplicantID)
	assert.Error(t, err)
	assert.Nil(t, repo.results[pairKey{testVacancyID, testApplicantID}])
}

func TestWithdrawThenReapply(t *testing.T) {
	_, svc := newApplicationFixture(true)

	_, err := svc.Apply(testApplicantID, dto.ApplyRequest{
		VacancyID: testVacancyID,
		Answers:   answersWithCorrect(1),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Withdraw(testVacancyID, testApplicantID))

	result, err := svc.Apply(testApplicantID, dto.ApplyRequest{
		VacancyID: testVacancyID,
		Answers:   answersWithCorrect(4),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Score)
	assert.InDelta(t, 100.0, *result.Score, 1e-9)
	assert.Equal(t, model.ApplicationStatusPending, result.Status)
}

func TestWithdrawUnknownApplicationIsNotFound(t *testing.T) {
	_, svc := newApplicationFixture(false)

	err := svc.Withdraw(testVacancyID, testApplicantID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
