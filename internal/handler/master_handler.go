package handler

import (
	"net/http"
	"strconv"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
	"hrms-backend/internal/service"
	"hrms-backend/pkg/apperrors"
	"hrms-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// MasterHandler serves the lookup-table management endpoints
type MasterHandler struct {
	masterService service.MasterService
	auth          *middleware.AuthMiddleware
}

// NewMasterHandler sets up the routing dependencies for lookup endpoints
func NewMasterHandler(masterService service.MasterService, auth *middleware.AuthMiddleware) *MasterHandler {
	return &MasterHandler{masterService: masterService, auth: auth}
}

// RegisterRoutes binds the endpoints under /api/master
func (h *MasterHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.Use(h.auth.Authenticate())

	// Read routes for any authenticated user
	router.GET("/get-types", h.ListTypes)
	router.GET("/get-optiontype", h.ListOptions)
	router.GET("/get-option-by-typecodes", h.ListOptionsByTypeCode)

	// Mutations restricted to admins
	admin := middleware.RequireRoles(model.RoleAdmin, model.RoleSuperAdmin)
	router.POST("/create-type", admin, h.CreateType)
	router.POST("/update-type", admin, h.UpdateType)
	router.POST("/delete-type", admin, h.DeleteType)
	router.POST("/create-optiontype", admin, h.CreateOption)
	router.POST("/update-optiontype", admin, h.UpdateOption)
	router.POST("/delete-optiontype", admin, h.DeleteOption)
}

// CreateType adds a lookup type category with the next free code
// @Summary      Create lookup type
// @Tags         master
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateTypeDTO  true  "Type Payload"
// @Success      201      {object}  response.Body{data=model.LookupType}
// @Failure      400      {object}  response.Body
// @Router       /api/master/create-type [post]
func (h *MasterHandler) CreateType(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.CreateTypeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	t, err := h.masterService.CreateType(c.Request.Context(), req, identity.ID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusCreated, response.Success("type created successfully", t))
}

// ListTypes returns all live lookup types ordered by code
// @Summary      List lookup types
// @Tags         master
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body{data=[]model.LookupType}
// @Router       /api/master/get-types [get]
func (h *MasterHandler) ListTypes(c *gin.Context) {
	types, err := h.masterService.ListTypes(c.Request.Context())
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.SuccessCount("types fetched successfully", types, len(types)))
}

// UpdateType edits a lookup type's name or description
// @Summary      Update lookup type
// @Tags         master
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.UpdateTypeDTO  true  "Update Payload"
// @Success      200      {object}  response.Body{data=model.LookupType}
// @Failure      404      {object}  response.Body
// @Router       /api/master/update-type [post]
func (h *MasterHandler) UpdateType(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.UpdateTypeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	t, err := h.masterService.UpdateType(c.Request.Context(), req, identity.ID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("type updated successfully", t))
}

type deleteByIDDTO struct {
	ID string `json:"id" binding:"required"`
}

// DeleteType soft-deletes a lookup type. Its code is never reused.
// @Summary      Delete lookup type
// @Tags         master
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      handler.deleteByIDDTO  true  "Type ID"
// @Success      200      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Router       /api/master/delete-type [post]
func (h *MasterHandler) DeleteType(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req deleteByIDDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.masterService.DeleteType(c.Request.Context(), req.ID, identity.ID); err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("type deleted successfully", nil))
}

// CreateOption adds an option attached to one or more type codes
// @Summary      Create option
// @Tags         master
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateOptionDTO  true  "Option Payload"
// @Success      201      {object}  response.Body{data=model.OptionType}
// @Failure      400      {object}  response.Body
// @Router       /api/master/create-optiontype [post]
func (h *MasterHandler) CreateOption(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.CreateOptionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	o, err := h.masterService.CreateOption(c.Request.Context(), req, identity.ID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusCreated, response.Success("option created successfully", o))
}

// ListOptions returns all live options ordered by code
// @Summary      List options
// @Tags         master
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body{data=[]model.OptionType}
// @Router       /api/master/get-optiontype [get]
func (h *MasterHandler) ListOptions(c *gin.Context) {
	options, err := h.masterService.ListOptions(c.Request.Context(), 0)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.SuccessCount("options fetched successfully", options, len(options)))
}

// ListOptionsByTypeCode returns the options attached to one type code
// @Summary      List options by type code
// @Tags         master
// @Produce      json
// @Security     BearerAuth
// @Param        typeCode  query     int  true  "Type code"
// @Success      200       {object}  response.Body{data=[]model.OptionType}
// @Failure      400       {object}  response.Body
// @Router       /api/master/get-option-by-typecodes [get]
func (h *MasterHandler) ListOptionsByTypeCode(c *gin.Context) {
	typeCode, err := strconv.Atoi(c.Query("typeCode"))
	if err != nil || typeCode < 1 {
		c.JSON(http.StatusBadRequest, response.Error("typeCode must be a positive integer"))
		return
	}

	options, err := h.masterService.ListOptions(c.Request.Context(), typeCode)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.SuccessCount("options fetched successfully", options, len(options)))
}

// UpdateOption edits an option's name, type codes or description
// @Summary      Update option
// @Tags         master
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.UpdateOptionDTO  true  "Update Payload"
// @Success      200      {object}  response.Body{data=model.OptionType}
// @Failure      404      {object}  response.Body
// @Router       /api/master/update-optiontype [post]
func (h *MasterHandler) UpdateOption(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.UpdateOptionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	o, err := h.masterService.UpdateOption(c.Request.Context(), req, identity.ID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("option updated successfully", o))
}

// DeleteOption soft-deletes an option. Its code is never reused.
// @Summary      Delete option
// @Tags         master
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      handler.deleteByIDDTO  true  "Option ID"
// @Success      200      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Router       /api/master/delete-optiontype [post]
func (h *MasterHandler) DeleteOption(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req deleteByIDDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.masterService.DeleteOption(c.Request.Context(), req.ID, identity.ID); err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("option deleted successfully", nil))
}
