package access

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/model"
)

// Cookie names set at login/registration and cleared at logout.
const (
	CookieID   = "id"
	CookieRole = "role"
)

// IdentityFromCookies parses the two session cookies. Anything malformed is
// treated as unauthenticated.
func IdentityFromCookies(ctx *gin.Context) Identity {
	var id Identity

	rawID, err := ctx.Cookie(CookieID)
	if err != nil {
		return id
	}
	parsed, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		return id
	}
	id.ID = uint(parsed)

	if rawRole, err := ctx.Cookie(CookieRole); err == nil {
		if role := model.Role(rawRole); role.Valid() {
			id.Role = role
		}
	}
	return id
}

// Middleware applies the gate to navigational requests. API calls are
// exempt; they carry their own identifiers.
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			ctx.Next()
			return
		}

		decision := Decide(ctx.Request.URL.Path, IdentityFromCookies(ctx))
		if !decision.Allow {
			ctx.Redirect(http.StatusFound, decision.Redirect)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
