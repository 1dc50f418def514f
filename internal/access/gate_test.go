package access

import (
	"testing"

	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	employer := Identity{ID: 3, Role: model.RoleEmployer}
	applicant := Identity{ID: 8, Role: model.RoleApplicant}
	anonymous := Identity{}

	tests := []struct {
		name         string
		path         string
		id           Identity
		wantAllow    bool
		wantRedirect string
	}{
		{"anonymous may log in", "/login", anonymous, true, ""},
		{"anonymous may register", "/registration", anonymous, true, ""},
		{"anonymous elsewhere goes to login", "/employer/works/3", anonymous, false, "/login"},
		{"anonymous at root goes to login", "/", anonymous, false, "/login"},

		{"employer on login page goes home", "/login", employer, false, "/employer/works/3"},
		{"applicant on registration page goes home", "/registration", applicant, false, "/applicant/vacancies/8"},

		{"applicant in employer area goes home", "/employer/works/3", applicant, false, "/applicant/vacancies/8"},
		{"employer in applicant area goes home", "/applicant/vacancies/8", employer, false, "/employer/works/3"},

		{"employer at root goes home", "/", employer, false, "/employer/works/3"},
		{"applicant at root goes home", "/", applicant, false, "/applicant/vacancies/8"},

		{"employer in own area", "/employer/works/3", employer, true, ""},
		{"applicant in own area", "/applicant/vacancies/8", applicant, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Decide(tt.path, tt.id)
			assert.Equal(t, tt.wantAllow, decision.Allow)
			assert.Equal(t, tt.wantRedirect, decision.Redirect)
		})
	}
}

func TestHome(t *testing.T) {
	assert.Equal(t, "/employer/works/3", Home(Identity{ID: 3, Role: model.RoleEmployer}))
	assert.Equal(t, "/applicant/vacancies/8", Home(Identity{ID: 8, Role: model.RoleApplicant}))
}
