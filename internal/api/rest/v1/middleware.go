package v1

import (
	"net/http"
	"strings"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"

	"github.com/gin-gonic/gin"
)

const userContextKey = "fkba.user"

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(ctx *gin.Context) string {
	header := strings.TrimSpace(ctx.GetHeader("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// StaffOnly rejects requests without a valid token of an active staff user.
func StaffOnly(authService staff.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			respondMessage(ctx, http.StatusUnauthorized, MsgMissingToken)
			return
		}

		user, err := authService.Authenticate(ctx, token)
		if err != nil {
			respondError(ctx, err)
			return
		}
		if !user.CanUsePanel() {
			respondMessage(ctx, http.StatusForbidden, staff.ErrForbidden.Error())
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

// currentUser returns the user stored by StaffOnly, or nil.
func currentUser(ctx *gin.Context) *staff.User {
	if v, ok := ctx.Get(userContextKey); ok {
		if user, ok := v.(*staff.User); ok {
			return user
		}
	}
	return nil
}
