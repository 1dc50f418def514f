package service

import (
	"github.com/jinzhu/copier"
	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/jobdesk/jobdesk/internal/repository"
)

type ResumeService interface {
	Get(applicantID uint) (*dto.ResumeResponse, error)
	Create(applicantID uint, req dto.ResumeRequest) (*dto.ResumeResponse, error)
	Update(applicantID uint, req dto.ResumeRequest) (*dto.ResumeResponse, error)
	Delete(applicantID uint) error
}

type resumeService struct {
	resumeRepo repository.ResumeRepository
}

func NewResumeService(resumeRepo repository.ResumeRepository) ResumeService {
	return &resumeService{resumeRepo: resumeRepo}
}

func (s *resumeService) Get(applicantID uint) (*dto.ResumeResponse, error) {
	resume, err := s.resumeRepo.FindByApplicantID(applicantID)
	if err != nil {
		return nil, apperr.FromStore(err, "resume not found", "")
	}
	return toResumeDTO(resume)
}

func (s *resumeService) Create(applicantID uint, req dto.ResumeRequest) (*dto.ResumeResponse, error) {
	resume := model.Resume{
		ApplicantID:    applicantID,
		PersonalInfo:   req.PersonalInfo,
		WorkExperience: req.WorkExperience,
	}
	if err := s.resumeRepo.Create(&resume); err != nil {
		return nil, apperr.FromStore(err, "applicant not found", "this applicant already has a resume")
	}
	return toResumeDTO(&resume)
}

func (s *resumeService) Update(applicantID uint, req dto.ResumeRequest) (*dto.ResumeResponse, error) {
	resume, err := s.resumeRepo.FindByApplicantID(applicantID)
	if err != nil {
		return nil, apperr.FromStore(err, "resume not found", "")
	}

	resume.PersonalInfo = req.PersonalInfo
	resume.WorkExperience = req.WorkExperience
	if err := s.resumeRepo.Update(resume); err != nil {
		return nil, apperr.FromStore(err, "resume not found", "")
	}
	return toResumeDTO(resume)
}

func (s *resumeService) Delete(applicantID uint) error {
	if err := s.resumeRepo.DeleteByApplicantID(applicantID); err != nil {
		return apperr.FromStore(err, "resume not found", "")
	}
	return nil
}

func toResumeDTO(resume *model.Resume) (*dto.ResumeResponse, error) {
	var resp dto.ResumeResponse
	if err := copier.Copy(&resp, resume); err != nil {
		return nil, apperr.Wrap(apperr.KindUnclassified, "error preparing response", err)
	}
	return &resp, nil
}
