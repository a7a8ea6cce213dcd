package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"servicedesk/internal/delivery/api/response"
	deliverycontext "servicedesk/internal/delivery/context"
	"servicedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BillingHandlerParams holds dependencies for BillingHandler, injected by Fx.
type BillingHandlerParams struct {
	fx.In

	BillingUC usecase.BillingUsecase
	Logger    *slog.Logger
}

// BillingHandler holds dependencies for billing-related handlers
type BillingHandler struct {
	billingUC usecase.BillingUsecase
	logger    *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler
func NewBillingHandler(params BillingHandlerParams) *BillingHandler {
	return &BillingHandler{
		billingUC: params.BillingUC,
		logger:    params.Logger,
	}
}

// CreateBilling handles a technician's billing submission.
// Multipart bodies carry the JSON payload in the "data" field and one file per
// material photoField; plain JSON bodies carry the payload alone.
func (h *BillingHandler) CreateBilling(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	form, err := multipartForm(c)
	if err != nil {
		return err
	}

	var input usecase.CreateBillingInput
	if form != nil {
		data, found := formValue(form, dataField)
		if !found || strings.TrimSpace(data) == "" {
			return response.BadRequest(c, "VALIDATION_ERROR", "data is required")
		}
		if err := json.Unmarshal([]byte(data), &input); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid billing data")
		}
	} else if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid billing input")
	}

	if input.ComplaintID == uuid.Nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "complaintId is required")
	}

	uploads, err := openFiles(form)
	if err != nil {
		return err
	}
	defer uploads.Close()

	record, err := h.billingUC.CreateBilling(c.Request().Context(), actor, &input, uploads.files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newBillingView(record))
}

// ListBilling handles listing billing records visible to the actor
func (h *BillingHandler) ListBilling(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var page usecase.Pagination
	if err := c.Bind(&page); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	result, err := h.billingUC.ListBilling(c.Request().Context(), actor, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*billingView, 0, len(result.Items))
	for _, record := range result.Items {
		views = append(views, newBillingView(record))
	}

	return response.Success(c, http.StatusOK, billingPageView{Items: views, PageInfo: result.PageInfo})
}

// GetBilling handles fetching one billing record
func (h *BillingHandler) GetBilling(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid billing ID")
	}

	record, err := h.billingUC.GetBilling(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBillingView(record))
}

// UpdateBilling handles an admin amendment of the materials
func (h *BillingHandler) UpdateBilling(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid billing ID")
	}

	var input usecase.UpdateBillingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid billing input")
	}

	record, err := h.billingUC.UpdateBilling(c.Request().Context(), actor, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBillingView(record))
}
