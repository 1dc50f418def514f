package model

// Role discriminates the two account variants. Dispatch on the role happens
// in one place (the auth service); everything downstream works with the
// concrete Employer or Applicant type.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleApplicant Role = "applicant"
)

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleApplicant
}
