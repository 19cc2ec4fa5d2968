package handler

import (
	"net/http"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
	"hrms-backend/internal/service"
	"hrms-backend/pkg/apperrors"
	"hrms-backend/pkg/pagination"
	"hrms-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler serves authentication and employee account endpoints
type UserHandler struct {
	authService service.AuthService
	userService service.UserService
	auth        *middleware.AuthMiddleware
}

// NewUserHandler sets up the routing dependencies for employee endpoints
func NewUserHandler(authService service.AuthService, userService service.UserService, auth *middleware.AuthMiddleware) *UserHandler {
	return &UserHandler{authService: authService, userService: userService, auth: auth}
}

// RegisterRoutes binds the endpoints under /api/employee
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Public routes
	router.GET("/health", h.Health)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.POST("/refresh-token", h.RefreshToken)
	router.POST("/update-password", h.UpdatePassword)

	// Protected routes
	protected := router.Group("")
	protected.Use(h.auth.Authenticate())
	{
		admin := middleware.RequireRoles(model.RoleAdmin, model.RoleSuperAdmin)
		listing := middleware.RequireRoles(model.RoleManager, model.RoleAdmin, model.RoleSuperAdmin)

		protected.POST("/create", admin, h.CreateEmployee)
		protected.POST("/update-user/:id", admin, h.UpdateEmployee)
		protected.GET("/all-users", listing, h.ListUsers)
		protected.GET("/get-user/:id", listing, h.GetUser)
		protected.GET("/all-managers", admin, h.ListManagers)
	}
}

// Health reports service liveness
// @Summary      Health check
// @Tags         employee
// @Produce      json
// @Success      200  {object}  response.Body
// @Router       /api/employee/health [get]
func (h *UserHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success("service is healthy", nil))
}

// Login authenticates by email or username
// @Summary      Login
// @Description  Authenticates by email or username and password, returning the user and a token pair
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginDTO  true  "Login Credentials"
// @Success      200      {object}  response.Body{data=service.LoginResult}
// @Failure      400      {object}  response.Body
// @Failure      401      {object}  response.Body
// @Failure      403      {object}  response.Body
// @Router       /api/employee/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("login successful", result))
}

// Logout acknowledges a logout. Tokens are stateless, so the client discards
// them; nothing is revoked server side.
// @Summary      Logout
// @Tags         employee
// @Produce      json
// @Success      200  {object}  response.Body
// @Router       /api/employee/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success("logged out", nil))
}

// RefreshToken exchanges a refresh token for a fresh pair
// @Summary      Refresh tokens
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RefreshDTO  true  "Refresh Token"
// @Success      200      {object}  response.Body{data=token.Pair}
// @Failure      400      {object}  response.Body
// @Failure      401      {object}  response.Body
// @Router       /api/employee/refresh-token [post]
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req service.RefreshDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("token refreshed", pair))
}

// UpdatePassword rotates a password using the old one as proof. Public so
// temporary-password accounts can rotate before holding a usable session.
// @Summary      Update password
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdatePasswordDTO  true  "Password Change"
// @Success      200      {object}  response.Body
// @Failure      400      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Router       /api/employee/update-password [post]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req service.UpdatePasswordDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	if _, err := h.authService.UpdatePassword(c.Request.Context(), req); err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("password updated successfully", nil))
}

// CreateEmployee provisions a new employee account
// @Summary      Create employee
// @Description  Creates an employee account with a generated username and an emailed temporary password
// @Tags         employee
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateEmployeeDTO  true  "Employee Payload"
// @Success      201      {object}  response.Body{data=service.CreatedEmployee}
// @Failure      400      {object}  response.Body
// @Failure      403      {object}  response.Body
// @Router       /api/employee/create [post]
func (h *UserHandler) CreateEmployee(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.CreateEmployeeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	created, err := h.userService.CreateEmployee(c.Request.Context(), req, identity.ID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusCreated, response.Success("employee created successfully", created))
}

// UpdateEmployee applies a partial update to an employee account
// @Summary      Update employee
// @Tags         employee
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                     true  "User ID"
// @Param        payload  body      service.UpdateEmployeeDTO  true  "Update Payload"
// @Success      200      {object}  response.Body{data=model.User}
// @Failure      400      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Router       /api/employee/update-user/{id} [post]
func (h *UserHandler) UpdateEmployee(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.UpdateEmployeeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.userService.UpdateEmployee(c.Request.Context(), c.Param("id"), req, identity.ID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("employee updated successfully", user))
}

// ListUsers returns a page of employees with manager names resolved
// @Summary      List employees
// @Tags         employee
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Body{data=[]repository.UserRow}
// @Router       /api/employee/all-users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := pagination.Parse(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.SuccessCount("users fetched successfully", users, int(total)))
}

// GetUser returns one employee by id
// @Summary      Get employee
// @Tags         employee
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Body{data=model.User}
// @Failure      404  {object}  response.Body
// @Router       /api/employee/get-user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("user fetched successfully", user))
}

// ListManagers returns active manager-role accounts for assignment dropdowns
// @Summary      List managers
// @Tags         employee
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body{data=[]service.ManagerOption}
// @Router       /api/employee/all-managers [get]
func (h *UserHandler) ListManagers(c *gin.Context) {
	managers, err := h.userService.ListManagers(c.Request.Context())
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.SuccessCount("managers fetched successfully", managers, len(managers)))
}
