package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cezeus/club-api/internal/api/handler"
	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/ports"
)

type stubCredentialService struct {
	selectFn func(ctx context.Context, caller ports.Caller, memberID string) (*ports.FacesView, error)
	facesFn  func(ctx context.Context, caller ports.Caller) (*ports.FacesView, error)
	flipFn   func(ctx context.Context, caller ports.Caller) (*ports.FacesView, error)
}

func (s *stubCredentialService) Select(ctx context.Context, caller ports.Caller, memberID string) (*ports.FacesView, error) {
	return s.selectFn(ctx, caller, memberID)
}

func (s *stubCredentialService) Faces(ctx context.Context, caller ports.Caller) (*ports.FacesView, error) {
	return s.facesFn(ctx, caller)
}

func (s *stubCredentialService) Flip(ctx context.Context, caller ports.Caller) (*ports.FacesView, error) {
	return s.flipFn(ctx, caller)
}

func (s *stubCredentialService) ClearSelection(memberID string) {}

type stubExportService struct {
	exportFn func(ctx context.Context, caller ports.Caller, memberID string) (*ports.ExportResult, error)
}

func (s *stubExportService) Export(ctx context.Context, caller ports.Caller, memberID string) (*ports.ExportResult, error) {
	return s.exportFn(ctx, caller, memberID)
}

func TestCredentialHandler_Select(t *testing.T) {
	e := testEcho()
	stub := &stubCredentialService{
		selectFn: func(ctx context.Context, caller ports.Caller, memberID string) (*ports.FacesView, error) {
			if memberID != "mem-1" {
				t.Fatalf("unexpected member id: %s", memberID)
			}
			return &ports.FacesView{MemberID: memberID, Shown: domain.FaceFront}, nil
		},
	}
	h := handler.NewCredentialHandler(stub, &stubExportService{})

	req := httptest.NewRequest(http.MethodPut, "/v1/carnet/selection", strings.NewReader(`{"member_id":"mem-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setCaller(c, domain.RoleAdministrative)

	if err := h.Select(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"shown":"FRONT"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCredentialHandler_Faces_NoSelection(t *testing.T) {
	e := testEcho()
	stub := &stubCredentialService{
		facesFn: func(ctx context.Context, caller ports.Caller) (*ports.FacesView, error) {
			return nil, domain.ErrNoSelection
		},
	}
	h := handler.NewCredentialHandler(stub, &stubExportService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/carnet", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setCaller(c, domain.RoleAdministrative)

	if err := h.Faces(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCredentialHandler_Flip(t *testing.T) {
	e := testEcho()
	stub := &stubCredentialService{
		flipFn: func(ctx context.Context, caller ports.Caller) (*ports.FacesView, error) {
			return &ports.FacesView{MemberID: "mem-1", Shown: domain.FaceBack}, nil
		},
	}
	h := handler.NewCredentialHandler(stub, &stubExportService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/carnet/flip", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setCaller(c, domain.RoleAdministrative)

	if err := h.Flip(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"shown":"BACK"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCredentialHandler_Export_Success(t *testing.T) {
	e := testEcho()
	exporter := &stubExportService{
		exportFn: func(ctx context.Context, caller ports.Caller, memberID string) (*ports.ExportResult, error) {
			return &ports.ExportResult{
				Filename:    "Credential_1001234567.pdf",
				ContentType: "application/pdf",
				Data:        []byte("%PDF-1.4"),
			}, nil
		},
	}
	h := handler.NewCredentialHandler(&stubCredentialService{}, exporter)

	req := httptest.NewRequest(http.MethodGet, "/v1/members/mem-1/carnet/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("mem-1")
	setCaller(c, domain.RoleAdministrative)

	if err := h.Export(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "application/pdf") {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "Credential_1001234567.pdf") {
		t.Fatalf("unexpected content disposition: %s", cd)
	}
}

func TestCredentialHandler_Export_Busy(t *testing.T) {
	e := testEcho()
	exporter := &stubExportService{
		exportFn: func(ctx context.Context, caller ports.Caller, memberID string) (*ports.ExportResult, error) {
			return nil, domain.ErrExportBusy
		},
	}
	h := handler.NewCredentialHandler(&stubCredentialService{}, exporter)

	req := httptest.NewRequest(http.MethodGet, "/v1/members/mem-1/carnet/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("mem-1")
	setCaller(c, domain.RoleAdministrative)

	if err := h.Export(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
