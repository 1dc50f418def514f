package auth

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/access"
	"github.com/jobdesk/jobdesk/internal/controller"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/service"
	"github.com/rs/zerolog/log"
)

const sessionMaxAge = 60 * 60 * 24 * 7 // one week

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// setSession writes the id/role cookies consumed by the access gate.
func setSession(ctx *gin.Context, session *dto.SessionDTO, maxAge int) {
	ctx.SetCookie(access.CookieID, formatID(session.ID), maxAge, "/", "", false, false)
	ctx.SetCookie(access.CookieRole, session.Role, maxAge, "/", "", false, false)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Register godoc
// @Summary Register a new employer or applicant account
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body dto.RegistrationRequest true "Account data with role"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid payload"
// @Failure 409 {object} dto.Response "Email already registered"
// @Router /auth/registration [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}

	session, err := c.authService.Register(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}

	setSession(ctx, session, sessionMaxAge)
	ctx.JSON(http.StatusCreated, dto.Response{Message: "welcome, " + session.Role, Data: session})
}

// Login godoc
// @Summary Log into an existing account
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email, password and role"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response "Wrong password"
// @Failure 404 {object} dto.Response "Unknown email"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}

	session, err := c.authService.Login(req)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("Login failed")
		controller.RespondError(ctx, err)
		return
	}

	setSession(ctx, session, sessionMaxAge)
	ctx.JSON(http.StatusOK, dto.Response{Message: "login successful", Data: session})
}

// Logout godoc
// @Summary Clear the session cookies
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(access.CookieID, "", -1, "/", "", false, false)
	ctx.SetCookie(access.CookieRole, "", -1, "/", "", false, false)
	ctx.JSON(http.StatusOK, dto.Response{Message: "logged out"})
}
