package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaveService struct {
	approvedID    string
	approvedActor string
	decideErr     error
}

func (s *stubLeaveService) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	return leave.LeaveType{Name: req.Name}, nil
}

func (s *stubLeaveService) ListLeaveTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return nil, nil
}

func (s *stubLeaveService) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, nil
}

func (s *stubLeaveService) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{ID: id}, nil
}

func (s *stubLeaveService) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (s *stubLeaveService) ApproveLeaveRequest(ctx context.Context, requestID string, actor string) (leave.LeaveRequest, error) {
	if s.decideErr != nil {
		return leave.LeaveRequest{}, s.decideErr
	}
	s.approvedID = requestID
	s.approvedActor = actor
	return leave.LeaveRequest{ID: requestID, Status: leave.StatusApproved}, nil
}

func (s *stubLeaveService) RejectLeaveRequest(ctx context.Context, req leave.RejectRequestRequest, actor string) (leave.LeaveRequest, error) {
	if s.decideErr != nil {
		return leave.LeaveRequest{}, s.decideErr
	}
	return leave.LeaveRequest{ID: req.RequestID, Status: leave.StatusRejected, Comments: req.Comments}, nil
}

func (s *stubLeaveService) CancelLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	if s.decideErr != nil {
		return leave.LeaveRequest{}, s.decideErr
	}
	return leave.LeaveRequest{ID: requestID, Status: leave.StatusCancelled}, nil
}

func authenticatedRequest(t *testing.T, method, target string, body []byte, claims map[string]interface{}) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(claims)
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)

	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestLeaveHandler_ApproveRequest_UsesActorFromToken(t *testing.T) {
	svc := &stubLeaveService{}
	handler := NewLeaveHandler(svc)

	req := authenticatedRequest(t, http.MethodPost, "/api/v1/leave/requests/req-1/approve", nil, map[string]interface{}{
		"full_name": "Dana Admin",
		"email":     "dana@example.com",
		"is_admin":  true,
		"type":      "access",
	})
	req = withURLParam(req, "id", "req-1")

	rec := httptest.NewRecorder()
	handler.ApproveRequest(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", svc.approvedID)
	assert.Equal(t, "Dana Admin", svc.approvedActor)
}

func TestLeaveHandler_ApproveRequest_AlreadyDecided(t *testing.T) {
	svc := &stubLeaveService{
		decideErr: fmt.Errorf("approve leave request: %w", leave.ErrInvalidTransition),
	}
	handler := NewLeaveHandler(svc)

	req := authenticatedRequest(t, http.MethodPost, "/api/v1/leave/requests/req-1/approve", nil, map[string]interface{}{
		"full_name": "Dana Admin",
		"is_admin":  true,
		"type":      "access",
	})
	req = withURLParam(req, "id", "req-1")

	rec := httptest.NewRecorder()
	handler.ApproveRequest(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLeaveHandler_CreateRequest_ValidationFailure(t *testing.T) {
	handler := NewLeaveHandler(&stubLeaveService{})

	body, _ := json.Marshal(leave.CreateLeaveRequestRequest{
		EmployeeID: "EMP001",
		// leave_type_id, dates, and reason missing
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leave/requests", bytes.NewReader(body))

	rec := httptest.NewRecorder()
	handler.CreateRequest(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error.Details, "leave_type_id")
	assert.Contains(t, resp.Error.Details, "reason")
}

func TestLeaveHandler_RejectRequest_EmptyBodyAllowed(t *testing.T) {
	svc := &stubLeaveService{}
	handler := NewLeaveHandler(svc)

	req := authenticatedRequest(t, http.MethodPost, "/api/v1/leave/requests/req-2/reject", nil, map[string]interface{}{
		"full_name": "Dana Admin",
		"is_admin":  true,
		"type":      "access",
	})
	req = withURLParam(req, "id", "req-2")

	rec := httptest.NewRecorder()
	handler.RejectRequest(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
