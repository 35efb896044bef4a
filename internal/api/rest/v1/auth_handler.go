package v1

import (
	"net/http"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for staff authentication
type AuthHandler interface {
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
}

type authHandler struct {
	authService staff.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService staff.AuthService) AuthHandler {
	return &authHandler{authService: authService}
}

// Login exchanges staff credentials for an access token
// @Summary Staff login
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	session, err := handler.authService.Login(ctx, request.Username, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newLoginResponse(session))
}

// Me returns the authenticated user
func (handler *authHandler) Me(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		respondMessage(ctx, http.StatusUnauthorized, MsgMissingToken)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username, "is_staff": user.IsStaff})
}
