package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hexapixel/backend/internal/application/usecase/auth"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
	"github.com/hexapixel/backend/internal/integration/entrypoint/dto"
	"github.com/hexapixel/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerSuperAdminUseCase *auth.RegisterSuperAdminUseCase
	loginUserUseCase          *auth.LoginUserUseCase
	logoutUserUseCase         *auth.LogoutUserUseCase
	changePasswordUseCase     *auth.ChangePasswordUseCase
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(
	registerSuperAdminUseCase *auth.RegisterSuperAdminUseCase,
	loginUserUseCase *auth.LoginUserUseCase,
	logoutUserUseCase *auth.LogoutUserUseCase,
	changePasswordUseCase *auth.ChangePasswordUseCase,
) *AuthController {
	return &AuthController{
		registerSuperAdminUseCase: registerSuperAdminUseCase,
		loginUserUseCase:          loginUserUseCase,
		logoutUserUseCase:         logoutUserUseCase,
		changePasswordUseCase:     changePasswordUseCase,
	}
}

// Register handles POST /api/users/register. It only succeeds while no super
// admin exists yet.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterSuperAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"username, password, and fullName are required",
			string(domainerror.ErrCodeMissingUserFields),
		))
		return
	}

	output, err := c.registerSuperAdminUseCase.Execute(ctx.Request.Context(), auth.RegisterSuperAdminInput{
		Username:      req.Username,
		Password:      req.Password,
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		c.handleAuthError(ctx, err, "register")
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("super admin registered", dto.ToAuthResponse(output.Token, output.User)))
}

// Login handles POST /api/users/login.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"username and password are required",
			string(domainerror.ErrCodeInvalidCredentials),
		))
		return
	}

	output, err := c.loginUserUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err, "login")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("login successful", dto.ToAuthResponse(output.Token, output.User)))
}

// Logout handles POST /api/users/logout. The bearer token is revoked for the
// rest of its lifetime.
func (c *AuthController) Logout(ctx *gin.Context) {
	token, ok := middleware.GetTokenFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	if err := c.logoutUserUseCase.Execute(ctx.Request.Context(), auth.LogoutUserInput{Token: token}); err != nil {
		c.handleAuthError(ctx, err, "logout")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("logout successful", nil))
}

// ChangePassword handles PUT /api/users/password.
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"oldPassword and newPassword are required",
			string(domainerror.ErrCodeMissingUserFields),
		))
		return
	}

	err := c.changePasswordUseCase.Execute(ctx.Request.Context(), auth.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		c.handleAuthError(ctx, err, "change password")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("password changed", nil))
}

// handleAuthError maps auth errors to HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error, operation string) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		status := http.StatusBadRequest
		switch authErr.Code {
		case domainerror.ErrCodeInvalidCredentials, domainerror.ErrCodeMissingToken, domainerror.ErrCodeInvalidToken:
			status = http.StatusUnauthorized
		case domainerror.ErrCodeSuperAdminRegistered, domainerror.ErrCodeUsernameTaken:
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.Error(authErr.Message, string(authErr.Code)))
		return
	}

	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		ctx.JSON(http.StatusBadRequest, dto.Error(userErr.Message, string(userErr.Code)))
		return
	}

	slog.Error("auth operation failed", "operation", operation, "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.Error(
		"internal server error",
		string(domainerror.ErrCodeAuthInternalError),
	))
}
