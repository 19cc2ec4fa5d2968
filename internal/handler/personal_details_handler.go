package handler

import (
	"net/http"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/service"
	"hrms-backend/pkg/apperrors"
	"hrms-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// PersonalDetailsHandler serves the extended employee record endpoints
type PersonalDetailsHandler struct {
	detailsService service.PersonalDetailsService
	auth           *middleware.AuthMiddleware
}

// NewPersonalDetailsHandler sets up the routing dependencies for personal detail endpoints
func NewPersonalDetailsHandler(detailsService service.PersonalDetailsService, auth *middleware.AuthMiddleware) *PersonalDetailsHandler {
	return &PersonalDetailsHandler{detailsService: detailsService, auth: auth}
}

// RegisterRoutes binds the endpoints under /api/personal-details
func (h *PersonalDetailsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.Use(h.auth.Authenticate())

	router.POST("/:employeeId", h.Create)
	router.GET("/:employeeId", h.Get)
	router.POST("/update/:employeeId", h.Update)
}

// Create adds the personal record for an employee. One record per employee.
// @Summary      Create personal details
// @Tags         personal-details
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path      string                      true  "Employee ID"
// @Param        payload     body      service.PersonalDetailsDTO  true  "Details Payload"
// @Success      201         {object}  response.Body{data=model.PersonalDetail}
// @Failure      404         {object}  response.Body
// @Failure      409         {object}  response.Body
// @Router       /api/personal-details/{employeeId} [post]
func (h *PersonalDetailsHandler) Create(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.PersonalDetailsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}
	req.EmployeeID = c.Param("employeeId")

	details, err := h.detailsService.Create(c.Request.Context(), req, identity.ID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusCreated, response.Success("personal details created successfully", details))
}

// Get returns the personal record of an employee
// @Summary      Get personal details
// @Tags         personal-details
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path      string  true  "Employee ID"
// @Success      200         {object}  response.Body{data=model.PersonalDetail}
// @Failure      404         {object}  response.Body
// @Router       /api/personal-details/{employeeId} [get]
func (h *PersonalDetailsHandler) Get(c *gin.Context) {
	details, err := h.detailsService.GetByEmployee(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("personal details fetched successfully", details))
}

// Update merges new values into the personal record
// @Summary      Update personal details
// @Tags         personal-details
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path      string                      true  "Employee ID"
// @Param        payload     body      service.PersonalDetailsDTO  true  "Details Payload"
// @Success      200         {object}  response.Body{data=model.PersonalDetail}
// @Failure      404         {object}  response.Body
// @Router       /api/personal-details/update/{employeeId} [post]
func (h *PersonalDetailsHandler) Update(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.PersonalDetailsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}
	req.EmployeeID = c.Param("employeeId")

	details, err := h.detailsService.Update(c.Request.Context(), req, identity.ID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("personal details updated successfully", details))
}
