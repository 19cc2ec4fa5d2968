package handler

import (
	"net/http"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/service"
	"hrms-backend/pkg/apperrors"
	"hrms-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves the employee document endpoints
type DocumentHandler struct {
	documentService service.DocumentService
	auth            *middleware.AuthMiddleware
}

// NewDocumentHandler sets up the routing dependencies for document endpoints
func NewDocumentHandler(documentService service.DocumentService, auth *middleware.AuthMiddleware) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, auth: auth}
}

// RegisterRoutes binds the endpoints under /api/document
func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.Use(h.auth.Authenticate())

	router.POST("/upload", h.Upload)
	router.GET("/get-files", h.ListFiles)
}

// Upload stores one or more base64-encoded files under a category
// @Summary      Upload documents
// @Tags         document
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.UploadDocumentsDTO  true  "Upload Payload"
// @Success      201      {object}  response.Body{data=[]model.Document}
// @Failure      400      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Router       /api/document/upload [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req service.UploadDocumentsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	docs, err := h.documentService.Upload(c.Request.Context(), req, identity.ID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusCreated, response.SuccessCount("documents uploaded successfully", docs, len(docs)))
}

// ListFiles returns document metadata with download URLs. Defaults to the
// caller's own files; employeeId switches the target employee.
// @Summary      List documents
// @Tags         document
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  query     string  false  "Employee ID (defaults to caller)"
// @Param        category    query     string  false  "Category filter"
// @Success      200         {object}  response.Body{data=[]service.DocumentView}
// @Failure      400         {object}  response.Body
// @Router       /api/document/get-files [get]
func (h *DocumentHandler) ListFiles(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	employeeID := c.Query("employeeId")
	if employeeID == "" {
		employeeID = identity.ID.String()
	}

	docs, err := h.documentService.ListByEmployee(c.Request.Context(), employeeID, c.Query("category"))
	if err != nil {
		c.JSON(apperrors.StatusCode(err), response.Error(apperrors.Message(err)))
		return
	}

	c.JSON(http.StatusOK, response.SuccessCount("documents fetched successfully", docs, len(docs)))
}
