package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicedesk/internal/delivery/api/middleware"
	"servicedesk/internal/delivery/api/router/handler"
	"servicedesk/internal/delivery/api/validator"
	"servicedesk/internal/domain/entity"
	domainerrors "servicedesk/internal/domain/errors"
	"servicedesk/internal/domain/service"
	mockservice "servicedesk/internal/mocks/service"
	mockusecase "servicedesk/internal/mocks/usecase"
	"servicedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type testServer struct {
	echo         *echo.Echo
	complaints   *mockusecase.MockComplaintUsecase
	billing      *mockusecase.MockBillingUsecase
	notification *mockusecase.MockNotificationUsecase
	qrcode       *mockservice.MockQRCodeService

	client     entity.Actor
	technician entity.Actor
	admin      entity.Actor
}

func newTestServer(t *testing.T, pingErr error) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &testServer{
		echo:         echo.New(),
		complaints:   mockusecase.NewMockComplaintUsecase(t),
		billing:      mockusecase.NewMockBillingUsecase(t),
		notification: mockusecase.NewMockNotificationUsecase(t),
		qrcode:       mockservice.NewMockQRCodeService(t),
		client:       entity.NewClientActor(uuid.New()),
		technician:   entity.NewTechnicianActor(uuid.New()),
		admin:        entity.NewAdminActor(uuid.New()),
	}

	tokens := mockservice.NewMockTokenService(t)
	for token, actor := range map[string]entity.Actor{
		"client-token":     s.client,
		"technician-token": s.technician,
		"admin-token":      s.admin,
	} {
		claims := &service.Claims{Role: actor.Role().String()}
		claims.Subject = actor.ID().String()
		tokens.EXPECT().ValidateToken(token).Return(claims, nil).Maybe()
	}
	tokens.EXPECT().ValidateToken(mock.Anything).Return(nil, errors.New("bad token")).Maybe()

	s.echo.Validator = validator.New()
	s.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		ComplaintHandler: handler.NewComplaintHandler(handler.ComplaintHandlerParams{
			ComplaintUC:    s.complaints,
			NotificationUC: s.notification,
			QRCodeService:  s.qrcode,
			Logger:         logger,
		}),
		BillingHandler: handler.NewBillingHandler(handler.BillingHandlerParams{
			BillingUC: s.billing,
			Logger:    logger,
		}),
		HealthHandler: handler.NewHealthHandlerForPinger(fakePinger{err: pingErr}, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: tokens,
			Logger:       logger,
		}),
	}).RegisterRoutes(s.echo)

	return s
}

func (s *testServer) do(t *testing.T, method, target, token string, body io.Reader, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(raw)
}

type part struct {
	field, filename, content string
}

func multipartBody(t *testing.T, values map[string][]string, files ...part) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vs := range values {
		for _, v := range vs {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	for _, f := range files {
		fw, err := w.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestRouter_Authentication(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/client/complaints", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	rec, env = s.do(t, http.MethodGet, "/api/v1/client/complaints", "forged", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestRouter_RoleGroups(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		token  string
	}{
		{"client on admin routes", http.MethodGet, "/api/v1/admin/complaints", "client-token"},
		{"technician on client routes", http.MethodGet, "/api/v1/client/complaints", "technician-token"},
		{"client on technician billing", http.MethodGet, "/api/v1/technician/billing", "client-token"},
		{"admin on technician status", http.MethodPatch, "/api/v1/technician/complaints/" + uuid.NewString() + "/status", "admin-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.do(t, tt.method, tt.target, tt.token, nil, "")
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "FORBIDDEN", env.Error.Code)
		})
	}
}

func TestRouter_CreateComplaintJSON(t *testing.T) {
	s := newTestServer(t, nil)

	created := &entity.Complaint{ID: uuid.New(), ComplaintID: "CMP-KHA-000001", Status: entity.ComplaintStatusPending}
	s.complaints.EXPECT().
		CreateComplaint(mock.Anything, s.client, &usecase.CreateComplaintInput{
			Title:       "Leaking tap",
			Description: "Wash area tap leaks",
			Location:    "Kharadi",
			Priority:    entity.PriorityHigh,
		}, []*service.FileUpload(nil)).
		Return(&usecase.CreateComplaintResult{Complaint: created}, nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/client/complaints", "client-token", jsonBody(t, map[string]string{
		"title":       "Leaking tap",
		"description": "Wash area tap leaks",
		"location":    "Kharadi",
		"priority":    "high",
		"clientId":    uuid.NewString(), // ignored for clients
	}), echo.MIMEApplicationJSON)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "CMP-KHA-000001")
}

func TestRouter_CreateComplaintValidation(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/admin/complaints", "admin-token", jsonBody(t, map[string]string{
		"title":    "No description",
		"location": "Kharadi",
		"priority": "someday",
	}), echo.MIMEApplicationJSON)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Message, "description is required")
	assert.Contains(t, env.Error.Message, "priority must be one of")
}

func TestRouter_CreateComplaintMultipart(t *testing.T) {
	s := newTestServer(t, nil)

	clientID := uuid.New()
	var gotInput *usecase.CreateComplaintInput
	var gotFiles []string
	s.complaints.EXPECT().
		CreateComplaint(mock.Anything, s.admin, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ entity.Actor, input *usecase.CreateComplaintInput, photos []*service.FileUpload) {
			gotInput = input
			for _, p := range photos {
				raw, err := io.ReadAll(p.Content)
				assert.NoError(t, err)
				gotFiles = append(gotFiles, p.FieldName+":"+p.FileName+":"+string(raw))
			}
		}).
		Return(&usecase.CreateComplaintResult{Complaint: &entity.Complaint{ID: uuid.New()}}, nil)

	body, contentType := multipartBody(t, map[string][]string{
		"title":       {"Broken chiller"},
		"description": {"Chiller not cooling"},
		"location":    {"Viman Nagar"},
		"clientId":    {clientID.String()},
	}, part{"photos", "a.jpg", "AAA"}, part{"photos[]", "b.jpg", "BBB"})

	rec, _ := s.do(t, http.MethodPost, "/api/v1/admin/complaints", "admin-token", body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.NotNil(t, gotInput)
	assert.Equal(t, "Broken chiller", gotInput.Title)
	require.NotNil(t, gotInput.ClientID)
	assert.Equal(t, clientID, *gotInput.ClientID)
	assert.Equal(t, []string{"photos:a.jpg:AAA", "photos:b.jpg:BBB"}, gotFiles)
}

func TestRouter_UpdateComplaintMultipart(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.New()

	var gotInput *usecase.UpdateComplaintInput
	s.complaints.EXPECT().
		UpdateComplaint(mock.Anything, s.client, id, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ entity.Actor, _ uuid.UUID, input *usecase.UpdateComplaintInput, photos []*service.FileUpload) {
			gotInput = input
			assert.Len(t, photos, 1)
		}).
		Return(&entity.Complaint{ID: id}, nil)

	body, contentType := multipartBody(t, map[string][]string{
		"title":             {"Leaking tap (urgent)"},
		"priority":          {"urgent"},
		"removePhotoKeys[]": {"complaints/a.jpg", "complaints/b.jpg"},
	}, part{"photos", "c.jpg", "CCC"})

	rec, _ := s.do(t, http.MethodPatch, "/api/v1/client/complaints/"+id.String(), "client-token", body, contentType)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NotNil(t, gotInput)
	require.NotNil(t, gotInput.Title)
	assert.Equal(t, "Leaking tap (urgent)", *gotInput.Title)
	assert.Nil(t, gotInput.Description)
	assert.Nil(t, gotInput.Location)
	require.NotNil(t, gotInput.Priority)
	assert.Equal(t, entity.PriorityUrgent, *gotInput.Priority)
	assert.Equal(t, []string{"complaints/a.jpg", "complaints/b.jpg"}, gotInput.RemovePhotoKeys)
}

func TestRouter_ErrorMapping(t *testing.T) {
	s := newTestServer(t, nil)
	missing, broken, forbidden := uuid.New(), uuid.New(), uuid.New()

	s.complaints.EXPECT().GetComplaint(mock.Anything, s.client, missing).Return(nil, domainerrors.ErrComplaintNotFound)
	s.complaints.EXPECT().GetComplaint(mock.Anything, s.client, broken).Return(nil, errors.New("connection reset"))
	s.complaints.EXPECT().DeleteComplaint(mock.Anything, s.client, forbidden).
		Return(domainerrors.ErrComplaintNotPending)

	rec, env := s.do(t, http.MethodGet, "/api/v1/client/complaints/"+missing.String(), "client-token", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "COMPLAINT_NOT_FOUND", env.Error.Code)

	rec, env = s.do(t, http.MethodGet, "/api/v1/client/complaints/"+broken.String(), "client-token", nil, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")

	rec, env = s.do(t, http.MethodDelete, "/api/v1/client/complaints/"+forbidden.String(), "client-token", nil, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "COMPLAINT_NOT_PENDING", env.Error.Code)

	rec, env = s.do(t, http.MethodGet, "/api/v1/client/complaints/not-a-uuid", "client-token", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestRouter_AssignComplaint(t *testing.T) {
	s := newTestServer(t, nil)
	id, technicianID := uuid.New(), uuid.New()

	s.complaints.EXPECT().AssignComplaint(mock.Anything, s.admin, id, technicianID).
		Return(&entity.Complaint{ID: id, Status: entity.ComplaintStatusAssigned}, nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/admin/complaints/"+id.String()+"/assign", "admin-token",
		jsonBody(t, map[string]string{"technicianId": "nope"}), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	rec, env = s.do(t, http.MethodPost, "/api/v1/admin/complaints/"+id.String()+"/assign", "admin-token",
		jsonBody(t, map[string]string{"technicianId": technicianID.String()}), echo.MIMEApplicationJSON)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(env.Data), `"status":"assigned"`)
}

func TestRouter_UpdateStatus(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.New()

	s.complaints.EXPECT().
		UpdateStatus(mock.Anything, s.technician, id, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ entity.Actor, _ uuid.UUID, input *usecase.StatusUpdateInput, photos []*service.FileUpload) {
			assert.Equal(t, entity.ComplaintStatusResolved, input.Status)
			assert.Equal(t, "Replaced washer", input.ResolutionNotes)
			assert.Nil(t, input.Notes)
			require.Len(t, photos, 1)
			assert.Equal(t, "after.jpg", photos[0].FileName)
		}).
		Return(&entity.Complaint{ID: id, Status: entity.ComplaintStatusResolved}, nil)

	body, contentType := multipartBody(t, map[string][]string{
		"status":          {"resolved"},
		"resolutionNotes": {"Replaced washer"},
	}, part{"photos", "after.jpg", "JPEG"})

	rec, _ := s.do(t, http.MethodPatch, "/api/v1/technician/complaints/"+id.String()+"/status", "technician-token", body, contentType)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_UpdateStatusJSONNotes(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.New()
	notes := "On my way"

	s.complaints.EXPECT().
		UpdateStatus(mock.Anything, s.technician, id, &usecase.StatusUpdateInput{
			Status: entity.ComplaintStatusInProgress,
			Notes:  &notes,
		}, []*service.FileUpload(nil)).
		Return(&entity.Complaint{ID: id, Status: entity.ComplaintStatusInProgress}, nil)

	rec, _ := s.do(t, http.MethodPatch, "/api/v1/technician/complaints/"+id.String()+"/status", "technician-token",
		jsonBody(t, map[string]string{"status": "in-progress", "notes": notes}), echo.MIMEApplicationJSON)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_CreateBillingMultipart(t *testing.T) {
	s := newTestServer(t, nil)
	complaintID := uuid.New()

	s.billing.EXPECT().
		CreateBilling(mock.Anything, s.technician, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ entity.Actor, input *usecase.CreateBillingInput, files []*service.FileUpload) {
			assert.Equal(t, complaintID, input.ComplaintID)
			assert.True(t, input.MaterialsUsed)
			require.Len(t, input.Materials, 2)
			assert.Equal(t, "bill_pipe", input.Materials[0].PhotoField)
			assert.True(t, input.Materials[1].Price.Equal(decimal.RequireFromString("120.50")))
			require.Len(t, files, 1)
			assert.Equal(t, "bill_pipe", files[0].FieldName)
		}).
		Return(&entity.BillingRecord{
			ID:          uuid.New(),
			ComplaintID: complaintID,
			Materials: []entity.Material{
				{Name: "Pipe", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(150)},
				{Name: "Tape", Quantity: decimal.NewFromInt(2), Price: decimal.RequireFromString("120.50")},
			},
		}, nil)

	data := `{"complaintId":"` + complaintID.String() + `","isComplaintResolved":true,"materialsUsed":true,` +
		`"materials":[{"name":"Pipe","quantity":2,"price":150,"photoField":"bill_pipe"},{"name":"Tape","quantity":"2","price":"120.50"}]}`
	body, contentType := multipartBody(t, map[string][]string{"data": {data}}, part{"bill_pipe", "pipe.jpg", "JPEG"})

	rec, env := s.do(t, http.MethodPost, "/api/v1/technician/billing", "technician-token", body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, string(env.Data), `"total":"541"`)
}

func TestRouter_CreateBillingRequiresData(t *testing.T) {
	s := newTestServer(t, nil)

	body, contentType := multipartBody(t, nil, part{"bill_pipe", "pipe.jpg", "JPEG"})
	rec, env := s.do(t, http.MethodPost, "/api/v1/technician/billing", "technician-token", body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "data is required", env.Error.Message)
}

func TestRouter_BillingAdminRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.New()

	s.billing.EXPECT().ListBilling(mock.Anything, s.admin, usecase.Pagination{Page: 2, Limit: 5}).
		Return(&usecase.BillingPage{PageInfo: usecase.PageInfo{Page: 2, Limit: 5, Total: 6}}, nil)
	s.billing.EXPECT().UpdateBilling(mock.Anything, s.admin, id, mock.Anything).
		Return(&entity.BillingRecord{ID: id, MaterialsUsed: false}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/admin/billing?page=2&limit=5", "admin-token", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(env.Data), `"total":6`)

	rec, _ = s.do(t, http.MethodPut, "/api/v1/admin/billing/"+id.String(), "admin-token",
		jsonBody(t, map[string]any{"materialsUsed": false, "isComplaintResolved": true}), echo.MIMEApplicationJSON)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_ComplaintLabel(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.New()

	s.complaints.EXPECT().GetComplaint(mock.Anything, s.technician, id).
		Return(&entity.Complaint{ID: id, ComplaintID: "CMP-KHA-000007"}, nil)
	s.qrcode.EXPECT().GenerateComplaintLabel("CMP-KHA-000007").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/complaints/"+id.String()+"/qr", "technician-token", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "CMP-KHA-000007.png")
}

func TestRouter_ComplaintNotifications(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.New()

	s.notification.EXPECT().ListForComplaint(mock.Anything, s.admin, id).
		Return([]*entity.Notification{{ID: uuid.New(), ComplaintID: id, Status: entity.NotificationStatusSent}}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/admin/complaints/"+id.String()+"/notifications", "admin-token", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
}

func TestRouter_Health(t *testing.T) {
	rec, _ := newTestServer(t, nil).do(t, http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = newTestServer(t, errors.New("db down")).do(t, http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
