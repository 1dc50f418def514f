// Package access decides, per navigational request, whether the caller may
// proceed or must be redirected. The decision is a pure function of the
// requested path and the identity carried by the session cookies; handlers
// receive the identity explicitly and never read cookies themselves.
package access

import (
	"fmt"
	"strings"

	"github.com/jobdesk/jobdesk/internal/model"
)

// Identity is the parsed session state. ID zero means unauthenticated.
type Identity struct {
	ID   uint
	Role model.Role
}

func (id Identity) Authenticated() bool {
	return id.ID != 0
}

type Decision struct {
	Allow    bool
	Redirect string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirectTo(target string) Decision {
	return Decision{Redirect: target}
}

const (
	loginPath        = "/login"
	registrationPath = "/registration"

	employerArea  = "/employer/"
	applicantArea = "/applicant/"
)

// Home is the landing page for the identity's role.
func Home(id Identity) string {
	if id.Role == model.RoleEmployer {
		return fmt.Sprintf("/employer/works/%d", id.ID)
	}
	return fmt.Sprintf("/applicant/vacancies/%d", id.ID)
}

func openToUnauthenticated(path string) bool {
	return path == loginPath || path == registrationPath
}

// Decide evaluates the gate rules in order:
//  1. unauthenticated off the login/registration pages -> login
//  2. authenticated on the login/registration pages -> role home
//  3. applicant in the employer area -> applicant home
//  4. employer in the applicant area -> employer home
//  5. authenticated at the root -> role home
//  6. otherwise allow
func Decide(path string, id Identity) Decision {
	if !openToUnauthenticated(path) && !id.Authenticated() {
		return redirectTo(loginPath)
	}
	if id.Authenticated() && openToUnauthenticated(path) {
		return redirectTo(Home(id))
	}
	if strings.HasPrefix(path, employerArea) && id.Role == model.RoleApplicant {
		return redirectTo(Home(id))
	}
	if strings.HasPrefix(path, applicantArea) && id.Role == model.RoleEmployer {
		return redirectTo(Home(id))
	}
	if path == "/" && id.Authenticated() {
		return redirectTo(Home(id))
	}
	return allow()
}
