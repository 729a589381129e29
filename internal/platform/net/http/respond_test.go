package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "ledgerdesk/internal/platform/errors"
	ldnet "ledgerdesk/internal/platform/net"
)

type wireEnv struct {
	StatusCode int             `json:"status_code"`
	Status     string          `json:"status"`
	Code       int             `json:"code"`
	Error      string          `json:"error"`
	RequestID  string          `json:"request_id"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnv(t *testing.T, rec *httptest.ResponseRecorder) wireEnv {
	t.Helper()
	var env wireEnv
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("body is not an envelope: %v\n%s", err, rec.Body.String())
	}
	return env
}

func TestRespondOK(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(ldnet.WithRequestID(req.Context(), "req-1"))
	rec := httptest.NewRecorder()

	RespondOK(rec, req, map[string]string{"status": "healthy"})

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	env := decodeEnv(t, rec)
	if env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "req-1" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRespondErrorMapsCode(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	RespondError(rec, req, perr.UnknownSchemaf("no schema registered for statement type %q", "equity"))

	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnv(t, rec)
	if env.Code != int(perr.ErrorCodeUnknownSchema) || env.Error == "" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestResponseWrite_ErrorBody(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response {
		return Error(perr.SchemaViolationf("column %q is not nullable", "receipt_no"))
	})
	req := httptest.NewRequest("POST", "/", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnv(t, rec)
	if env.Code != int(perr.ErrorCodeSchemaViolation) {
		t.Fatalf("code = %d", env.Code)
	}
}

func TestResponseWrite_DefaultsToOK(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response {
		return Response{Body: map[string]int{"count": 3}}
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestResponseWrite_NoContent(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response { return NoContent() })
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("DELETE", "/", nil))

	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("204 carries a body: %s", rec.Body.String())
	}
}

func TestResponseWrite_Headers(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response {
		hdr := stdhttp.Header{}
		hdr.Set("X-Batch-Count", "3")
		return Response{Status: stdhttp.StatusCreated, Body: "ok", Header: hdr}
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/", nil))

	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Batch-Count") != "3" {
		t.Fatalf("custom header dropped")
	}
}

func TestJSONHandler(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required"`
	}
	h := JSONHandler[in](func(r *stdhttp.Request, v in) (any, error) {
		return map[string]string{"hello": v.Name}, nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"jane"}`)))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d\n%s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/", strings.NewReader(`{}`)))
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("validation status = %d", rec.Code)
	}
}
