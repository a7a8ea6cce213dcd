package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"servicedesk/internal/delivery/api/response"
	deliverycontext "servicedesk/internal/delivery/context"
	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/service"
	"servicedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComplaintHandlerParams holds dependencies for ComplaintHandler, injected by Fx.
type ComplaintHandlerParams struct {
	fx.In

	ComplaintUC    usecase.ComplaintUsecase
	NotificationUC usecase.NotificationUsecase
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// ComplaintHandler serves the complaint routes of every role group.
// Role-specific rules are enforced by the use case from the actor.
type ComplaintHandler struct {
	complaintUC    usecase.ComplaintUsecase
	notificationUC usecase.NotificationUsecase
	qrcodeSvc      service.QRCodeService
	logger         *slog.Logger
}

// NewComplaintHandler is the constructor for ComplaintHandler
func NewComplaintHandler(params ComplaintHandlerParams) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUC:    params.ComplaintUC,
		notificationUC: params.NotificationUC,
		qrcodeSvc:      params.QRCodeService,
		logger:         params.Logger,
	}
}

// CreateComplaintRequest is the JSON or multipart body for raising a complaint
type CreateComplaintRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=200"`
	Description string `json:"description" form:"description" validate:"required"`
	Location    string `json:"location" form:"location" validate:"required,max=100"`
	Priority    string `json:"priority" form:"priority" validate:"omitempty,oneof=low medium high urgent"`
	ClientID    string `json:"clientId" form:"clientId" validate:"omitempty,uuid"`
}

// UpdateComplaintRequest is the JSON body for editing a pending complaint
type UpdateComplaintRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Location        *string  `json:"location"`
	Priority        *string  `json:"priority"`
	RemovePhotoKeys []string `json:"removePhotoKeys"`
}

// AssignComplaintRequest is the body of an admin assignment
type AssignComplaintRequest struct {
	TechnicianID string `json:"technicianId" validate:"required,uuid"`
}

// UpdateStatusRequest is the JSON or multipart body of a technician transition
type UpdateStatusRequest struct {
	Status          string  `json:"status" form:"status" validate:"required"`
	Notes           *string `json:"notes" form:"-"`
	ResolutionNotes string  `json:"resolutionNotes" form:"resolutionNotes"`
}

// ListComplaintsRequest carries the list filters from the query string
type ListComplaintsRequest struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Status   string `query:"status"`
	Priority string `query:"priority"`
	Location string `query:"location"`
	Search   string `query:"search"`
}

func (r ListComplaintsRequest) toQuery() usecase.ComplaintQuery {
	return usecase.ComplaintQuery{
		Pagination: usecase.Pagination{Page: r.Page, Limit: r.Limit},
		Status:     entity.ComplaintStatus(r.Status),
		Priority:   entity.Priority(r.Priority),
		Location:   r.Location,
		Search:     r.Search,
	}
}

// CreateComplaint handles complaint creation for clients, technicians and admins
func (h *ComplaintHandler) CreateComplaint(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req CreateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid complaint input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Priority:    entity.Priority(req.Priority),
	}
	if req.ClientID != "" && actor.IsAdmin() {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid client ID")
		}
		input.ClientID = &clientID
	}

	form, err := multipartForm(c)
	if err != nil {
		return err
	}
	uploads, err := openFiles(form, photosField)
	if err != nil {
		return err
	}
	defer uploads.Close()

	result, err := h.complaintUC.CreateComplaint(c.Request().Context(), actor, input, uploads.files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ListComplaints handles listing complaints visible to the actor
func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req ListComplaintsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	page, err := h.complaintUC.ListComplaints(c.Request().Context(), actor, req.toQuery())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ListAssigned handles listing the calling technician's assignments
func (h *ComplaintHandler) ListAssigned(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req ListComplaintsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	page, err := h.complaintUC.ListAssigned(c.Request().Context(), actor, req.toQuery())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetComplaint handles fetching one complaint
func (h *ComplaintHandler) GetComplaint(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid complaint ID")
	}

	complaint, err := h.complaintUC.GetComplaint(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, complaint)
}

// UpdateComplaint handles edits to a pending complaint, as JSON or multipart with new photos
func (h *ComplaintHandler) UpdateComplaint(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid complaint ID")
	}

	form, err := multipartForm(c)
	if err != nil {
		return err
	}

	var req UpdateComplaintRequest
	if form != nil {
		req = UpdateComplaintRequest{
			Title:           optionalFormValue(form, "title"),
			Description:     optionalFormValue(form, "description"),
			Location:        optionalFormValue(form, "location"),
			Priority:        optionalFormValue(form, "priority"),
			RemovePhotoKeys: formValues(form, "removePhotoKeys"),
		}
	} else if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid complaint input")
	}

	input := &usecase.UpdateComplaintInput{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		RemovePhotoKeys: req.RemovePhotoKeys,
	}
	if req.Priority != nil {
		priority := entity.Priority(strings.TrimSpace(*req.Priority))
		input.Priority = &priority
	}

	uploads, err := openFiles(form, photosField)
	if err != nil {
		return err
	}
	defer uploads.Close()

	complaint, err := h.complaintUC.UpdateComplaint(c.Request().Context(), actor, id, input, uploads.files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, complaint)
}

// DeleteComplaint handles removal of a pending complaint
func (h *ComplaintHandler) DeleteComplaint(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid complaint ID")
	}

	if err := h.complaintUC.DeleteComplaint(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Confirm(c, "Complaint deleted")
}

// AssignComplaint handles admin assignment of a pending complaint
func (h *ComplaintHandler) AssignComplaint(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid complaint ID")
	}

	var req AssignComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	technicianID, err := uuid.Parse(req.TechnicianID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid technician ID")
	}

	complaint, err := h.complaintUC.AssignComplaint(c.Request().Context(), actor, id, technicianID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, complaint)
}

// UpdateStatus handles technician transitions, with resolution photos as multipart files
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid complaint ID")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	form, err := multipartForm(c)
	if err != nil {
		return err
	}
	if form != nil {
		// Only a notes field that was actually posted may change the stored notes.
		req.Notes = optionalFormValue(form, "notes")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	uploads, err := openFiles(form, photosField)
	if err != nil {
		return err
	}
	defer uploads.Close()

	input := &usecase.StatusUpdateInput{
		Status:          entity.ComplaintStatus(req.Status),
		Notes:           req.Notes,
		ResolutionNotes: req.ResolutionNotes,
	}

	complaint, err := h.complaintUC.UpdateStatus(c.Request().Context(), actor, id, input, uploads.files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, complaint)
}

// ListNotifications handles the delivery history of one complaint
func (h *ComplaintHandler) ListNotifications(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid complaint ID")
	}

	notifications, err := h.notificationUC.ListForComplaint(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// GetComplaintLabel renders the QR job-card label of a visible complaint
func (h *ComplaintHandler) GetComplaintLabel(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid complaint ID")
	}

	complaint, err := h.complaintUC.GetComplaint(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrcodeSvc.GenerateComplaintLabel(complaint.ComplaintID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+complaint.ComplaintID+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}
