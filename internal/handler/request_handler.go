package handler

import (
	"net/http"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
	"hrms-backend/internal/service"
	"hrms-backend/pkg/apperrors"
	"hrms-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequestHandler serves the approval workflow endpoints
type RequestHandler struct {
	requestService service.RequestService
	auth           *middleware.AuthMiddleware
}

// NewRequestHandler sets up the routing dependencies for request endpoints
func NewRequestHandler(requestService service.RequestService, auth *middleware.AuthMiddleware) *RequestHandler {
	return &RequestHandler{requestService: requestService, auth: auth}
}

// RegisterRoutes binds the endpoints under /api/request
func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.Use(h.auth.Authenticate())

	router.POST("/create-request", h.CreateRequest)
	router.GET("/get-request", h.GetRequests)
	router.GET("/get-requests-for-manager", h.GetRequestsForManager)
	router.POST("/respond-request",
		middleware.RequireRoles(model.RoleAdmin, model.RoleSuperAdmin, model.RoleManager),
		h.RespondRequest)
	router.POST("/update-request", h.UpdateRequest)
	router.POST("/delete-request", h.DeleteRequest)
}

// CreateRequest files a new pending request addressed to the caller's manager
// @Summary      Create request
// @Description  Files a leave or approval request; the assigned manager is notified
// @Tags         request
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateRequestDTO  true  "Request Payload"
// @Success      201      {object}  response.Body{data=model.Request}
// @Failure      400      {object}  response.Body
// @Router       /api/request/create-request [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.CreateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), identity.ID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusCreated, response.Success("request created successfully", request))
}

// GetRequests returns the caller's own requests, newest first
// @Summary      List own requests
// @Tags         request
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body{data=[]repository.RequestRow}
// @Router       /api/request/get-request [get]
func (h *RequestHandler) GetRequests(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	requests, err := h.requestService.ListForRequester(c.Request.Context(), identity.ID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.SuccessCount("requests fetched successfully", requests, len(requests)))
}

// GetRequestsForManager returns requests the caller may act on: every request
// for admins, direct reports' requests for managers, an empty list otherwise
// @Summary      List requests for approver
// @Tags         request
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body{data=[]repository.RequestRow}
// @Router       /api/request/get-requests-for-manager [get]
func (h *RequestHandler) GetRequestsForManager(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	requests, err := h.requestService.ListForApprover(c.Request.Context(), identity.ID, identity.Role)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.SuccessCount("requests fetched successfully", requests, len(requests)))
}

// RespondRequest applies an approve or reject decision
// @Summary      Respond to request
// @Description  Approves or rejects a pending request; managers may only act on direct reports
// @Tags         request
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.RespondRequestDTO  true  "Decision Payload"
// @Success      200      {object}  response.Body{data=model.Request}
// @Failure      403      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Failure      409      {object}  response.Body
// @Router       /api/request/respond-request [post]
func (h *RequestHandler) RespondRequest(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.RespondRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	request, err := h.requestService.Respond(c.Request.Context(), identity.ID, identity.Role, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("request responded successfully", request))
}

// UpdateRequest lets the creator edit a request's content fields
// @Summary      Update request
// @Tags         request
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.UpdateRequestDTO  true  "Update Payload"
// @Success      200      {object}  response.Body{data=model.Request}
// @Failure      403      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Router       /api/request/update-request [post]
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.UpdateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	request, err := h.requestService.Update(c.Request.Context(), identity.ID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("request updated successfully", request))
}

type deleteRequestDTO struct {
	ID string `json:"id" binding:"required"`
}

// DeleteRequest soft-deletes a request (creator or admin only)
// @Summary      Delete request
// @Tags         request
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      handler.deleteRequestDTO  true  "Request ID"
// @Success      200      {object}  response.Body
// @Failure      403      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Router       /api/request/delete-request [post]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req deleteRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	if _, err := h.requestService.Delete(c.Request.Context(), identity.ID, identity.Role, req.ID); err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.Success("request deleted successfully", nil))
}
