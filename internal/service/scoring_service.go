package service

import "github.com/jobdesk/jobdesk/internal/model"

// PassThreshold is the minimum percentage (inclusive) that counts as a
// passed screening test.
const PassThreshold float64 = 50.0

// ScoringService turns a submitted answer set into a percentage score.
type ScoringService interface {
	Score(questions []model.Question, answers map[uint]int) float64
	Passed(score float64) bool
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score counts a question as correct iff the submitted option number equals
// its CorrectAnswer. Questions without a submitted answer count as incorrect.
// An empty question set scores 0.
func (s *scoringService) Score(questions []model.Question, answers map[uint]int) float64 {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for _, q := range questions {
		if chosen, ok := answers[q.ID]; ok && chosen == q.CorrectAnswer {
			correct++
		}
	}
	return float64(correct) / float64(len(questions)) * 100
}

func (s *scoringService) Passed(score float64) bool {
	return score >= PassThreshold
}
