package service

import (
	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/jobdesk/jobdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// AuthService registers and authenticates both account variants. The role
// discriminant is dispatched here, once; callers never branch on it.
type AuthService interface {
	Register(req dto.RegistrationRequest) (*dto.SessionDTO, error)
	Login(req dto.LoginRequest) (*dto.SessionDTO, error)
}

type authService struct {
	employerRepo  repository.EmployerRepository
	applicantRepo repository.ApplicantRepository
}

func NewAuthService(employerRepo repository.EmployerRepository, applicantRepo repository.ApplicantRepository) AuthService {
	return &authService{employerRepo: employerRepo, applicantRepo: applicantRepo}
}

func (s *authService) Register(req dto.RegistrationRequest) (*dto.SessionDTO, error) {
	role := model.Role(req.Role)
	if !role.Valid() {
		return nil, apperr.BadRequest("unknown account role")
	}

	var id uint
	switch role {
	case model.RoleEmployer:
		employer := model.Employer{Name: req.Name, Email: req.Email, Password: req.Password}
		if err := s.employerRepo.Create(&employer); err != nil {
			return nil, apperr.FromStore(err, "", "an account with this email already exists")
		}
		id = employer.ID
	case model.RoleApplicant:
		applicant := model.Applicant{Name: req.Name, Email: req.Email, Password: req.Password, Status: "inactive"}
		if err := s.applicantRepo.Create(&applicant); err != nil {
			return nil, apperr.FromStore(err, "", "an account with this email already exists")
		}
		id = applicant.ID
	}

	log.Info().Uint("id", id).Str("role", req.Role).Msg("Account registered")
	return &dto.SessionDTO{ID: id, Role: req.Role, Name: req.Name}, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.SessionDTO, error) {
	var (
		id       uint
		name     string
		password string
	)

	switch model.Role(req.Role) {
	case model.RoleEmployer:
		employer, err := s.employerRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, apperr.FromStore(err, "no account with this email", "")
		}
		id, name, password = employer.ID, employer.Name, employer.Password
	case model.RoleApplicant:
		applicant, err := s.applicantRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, apperr.FromStore(err, "no account with this email", "")
		}
		id, name, password = applicant.ID, applicant.Name, applicant.Password
	default:
		return nil, apperr.BadRequest("unknown account role")
	}

	if password != req.Password {
		return nil, apperr.Unauthorized("wrong password")
	}

	log.Info().Uint("id", id).Str("role", req.Role).Msg("Login successful")
	return &dto.SessionDTO{ID: id, Role: req.Role, Name: name}, nil
}
