package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/application/usecase/user"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
	"github.com/hexapixel/backend/internal/integration/entrypoint/dto"
	"github.com/hexapixel/backend/internal/integration/entrypoint/middleware"
)

// userPhotoFolder is the upload folder for staff profile photos.
const userPhotoFolder = "users"

// UserController handles staff account endpoints.
type UserController struct {
	createUserUseCase    *user.CreateUserUseCase
	listUsersUseCase     *user.ListUsersUseCase
	getUserUseCase       *user.GetUserUseCase
	updateUserUseCase    *user.UpdateUserUseCase
	deleteUserUseCase    *user.DeleteUserUseCase
	resetPasswordUseCase *user.ResetPasswordUseCase
	fileStorage          adapter.FileStorage
	baseURL              string
}

// NewUserController creates a new UserController instance.
func NewUserController(
	createUserUseCase *user.CreateUserUseCase,
	listUsersUseCase *user.ListUsersUseCase,
	getUserUseCase *user.GetUserUseCase,
	updateUserUseCase *user.UpdateUserUseCase,
	deleteUserUseCase *user.DeleteUserUseCase,
	resetPasswordUseCase *user.ResetPasswordUseCase,
	fileStorage adapter.FileStorage,
	baseURL string,
) *UserController {
	return &UserController{
		createUserUseCase:    createUserUseCase,
		listUsersUseCase:     listUsersUseCase,
		getUserUseCase:       getUserUseCase,
		updateUserUseCase:    updateUserUseCase,
		deleteUserUseCase:    deleteUserUseCase,
		resetPasswordUseCase: resetPasswordUseCase,
		fileStorage:          fileStorage,
		baseURL:              baseURL,
	}
}

// Create handles POST /api/users. The request arrives as multipart form data
// so an optional profile photo can ride along.
func (c *UserController) Create(ctx *gin.Context) {
	actorRole, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	var req dto.CreateUserRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"username, password, fullName, and role are required",
			string(domainerror.ErrCodeMissingUserFields),
		))
		return
	}

	photoURL, err := c.savePhoto(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(err.Error(), string(domainerror.ErrCodeMissingUserFields)))
		return
	}

	output, err := c.createUserUseCase.Execute(ctx.Request.Context(), user.CreateUserInput{
		ActorRole:     actorRole,
		Username:      req.Username,
		Password:      req.Password,
		FullName:      req.FullName,
		Role:          entity.UserRole(req.Role),
		ContactNumber: req.ContactNumber,
		PhotoURL:      photoURL,
	})
	if err != nil {
		c.handleUserError(ctx, err, "create user")
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("user created", dto.ToUserResponse(output.User)))
}

// List handles GET /api/users with search and pagination.
func (c *UserController) List(ctx *gin.Context) {
	actorRole, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	output, err := c.listUsersUseCase.Execute(ctx.Request.Context(), user.ListUsersInput{
		ActorRole: actorRole,
		Search:    ctx.Query("search"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		c.handleUserError(ctx, err, "list users")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("users retrieved", dto.ToUserListResponse(
		output.Users, output.Page, output.Limit, output.Total, output.TotalPages,
	)))
}

// Me handles GET /api/users/me, returning the authenticated user's profile.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	output, err := c.getUserUseCase.Execute(ctx.Request.Context(), user.GetUserInput{UserID: userID})
	if err != nil {
		c.handleUserError(ctx, err, "get profile")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("profile retrieved", dto.ToUserResponse(output.User)))
}

// Get handles GET /api/users/:id.
func (c *UserController) Get(ctx *gin.Context) {
	userID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	output, err := c.getUserUseCase.Execute(ctx.Request.Context(), user.GetUserInput{UserID: userID})
	if err != nil {
		c.handleUserError(ctx, err, "get user")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("user retrieved", dto.ToUserResponse(output.User)))
}

// Update handles PUT /api/users/:id. Absent form fields are left unchanged.
func (c *UserController) Update(ctx *gin.Context) {
	actorRole, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	userID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"invalid request body",
			string(domainerror.ErrCodeMissingUserFields),
		))
		return
	}

	var role *entity.UserRole
	if req.Role != nil {
		r := entity.UserRole(*req.Role)
		role = &r
	}

	var photoURL *string
	if url, err := c.savePhoto(ctx); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(err.Error(), string(domainerror.ErrCodeMissingUserFields)))
		return
	} else if url != "" {
		photoURL = &url
	}

	output, err := c.updateUserUseCase.Execute(ctx.Request.Context(), user.UpdateUserInput{
		ActorRole:     actorRole,
		UserID:        userID,
		Username:      req.Username,
		FullName:      req.FullName,
		Role:          role,
		ContactNumber: req.ContactNumber,
		PhotoURL:      photoURL,
	})
	if err != nil {
		c.handleUserError(ctx, err, "update user")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("user updated", dto.ToUserResponse(output.User)))
}

// Delete handles DELETE /api/users/:id.
func (c *UserController) Delete(ctx *gin.Context) {
	actorRole, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	userID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	err := c.deleteUserUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{
		ActorRole: actorRole,
		UserID:    userID,
	})
	if err != nil {
		c.handleUserError(ctx, err, "delete user")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("user deleted", nil))
}

// ResetPassword handles PUT /api/users/:id/password, the administrative reset.
func (c *UserController) ResetPassword(ctx *gin.Context) {
	actorRole, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	userID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"newPassword is required",
			string(domainerror.ErrCodeMissingUserFields),
		))
		return
	}

	err := c.resetPasswordUseCase.Execute(ctx.Request.Context(), user.ResetPasswordInput{
		ActorRole:   actorRole,
		UserID:      userID,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		c.handleUserError(ctx, err, "reset password")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("password reset", nil))
}

// savePhoto stores an optional multipart photo and returns its public URL.
// A missing photo field is not an error.
func (c *UserController) savePhoto(ctx *gin.Context) (string, error) {
	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	filename, err := c.fileStorage.Save(userPhotoFolder, fileHeader.Filename, file)
	if err != nil {
		return "", err
	}

	return c.fileStorage.URL(c.baseURL, userPhotoFolder, filename), nil
}

// parseID extracts and validates the :id path parameter.
func (c *UserController) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"invalid user id",
			string(domainerror.ErrCodeUserNotFound),
		))
		return uuid.Nil, false
	}
	return id, true
}

// handleUserError maps user errors to HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error, operation string) {
	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.Error("user not found", string(domainerror.ErrCodeUserNotFound)))
		return
	}

	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		status := http.StatusBadRequest
		if userErr.Code == domainerror.ErrCodeUserRoleNotAllowed {
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.Error(userErr.Message, string(userErr.Code)))
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		status := http.StatusBadRequest
		if authErr.Code == domainerror.ErrCodeUsernameTaken {
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.Error(authErr.Message, string(authErr.Code)))
		return
	}

	slog.Error("user operation failed", "operation", operation, "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.Error(
		"internal server error",
		string(domainerror.ErrCodeUserInternalError),
	))
}
