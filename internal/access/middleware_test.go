package access

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/stretchr/testify/assert"
)

func gateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/login", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	r.GET("/employer/works/:id", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	r.GET("/api/v1/tags", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	return r
}

func doGet(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestMiddlewareRedirectsAnonymousNavigation(t *testing.T) {
	rec := doGet(gateRouter(), "/employer/works/3")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestMiddlewareAllowsOwnArea(t *testing.T) {
	rec := doGet(gateRouter(), "/employer/works/3",
		&http.Cookie{Name: CookieID, Value: "3"},
		&http.Cookie{Name: CookieRole, Value: string(model.RoleEmployer)},
	)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareRedirectsWrongArea(t *testing.T) {
	rec := doGet(gateRouter(), "/employer/works/3",
		&http.Cookie{Name: CookieID, Value: "8"},
		&http.Cookie{Name: CookieRole, Value: string(model.RoleApplicant)},
	)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/applicant/vacancies/8", rec.Header().Get("Location"))
}

func TestMiddlewareExemptsAPIRoutes(t *testing.T) {
	rec := doGet(gateRouter(), "/api/v1/tags")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityFromCookiesMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieID, Value: "not-a-number"})
	req.AddCookie(&http.Cookie{Name: CookieRole, Value: string(model.RoleEmployer)})

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = req

	id := IdentityFromCookies(ctx)
	assert.False(t, id.Authenticated())
}

func TestIdentityFromCookiesInvalidRoleIsDropped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieID, Value: "3"})
	req.AddCookie(&http.Cookie{Name: CookieRole, Value: "superuser"})

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = req

	id := IdentityFromCookies(ctx)
	assert.True(t, id.Authenticated())
	assert.Empty(t, string(id.Role))
}
