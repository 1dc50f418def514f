package dto

// RegistrationRequest creates either account variant depending on Role.
type RegistrationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
	Role     string `json:"role" binding:"required,oneof=employer applicant"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=employer applicant"`
}

// SessionDTO is returned on successful login/registration and mirrors the
// two session cookies.
type SessionDTO struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
	Name string `json:"name"`
}
