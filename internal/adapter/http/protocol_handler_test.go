package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	protoDomain "microlend/internal/domain/protocol"
	"microlend/internal/domain/uow"
	"microlend/internal/testutil/protocolmock"
	"microlend/internal/testutil/uowmock"
	uc "microlend/internal/usecase/protocol"

	"github.com/labstack/echo/v4"
)

func TestInitialize_Success(t *testing.T) {
	e := newEchoWithValidator()

	var created *protoDomain.Config
	repo := &protocolmock.Repo{
		CreateFn: func(ctx context.Context, c *protoDomain.Config) error {
			created = c
			return nil
		},
	}
	h := NewProtocolHandler(uc.NewUsecase(repo, uowmock.New()))

	reqBody := map[string]any{
		"authority":        testAuthority,
		"oracle_authority": testLender,
		"protocol_fee_bps": 500,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/protocol/initialize", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Initialize(c); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if created == nil || created.ID != protoDomain.SingletonID {
		t.Fatalf("config not created with singleton id: %+v", created)
	}
	if created.Authority != testAuthority || created.OracleAuthority != testLender {
		t.Fatalf("authorities: %+v", created)
	}
}

func TestInitialize_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewProtocolHandler(uc.NewUsecase(&protocolmock.Repo{}, uowmock.New()))

	// fee over the 10% cap, bad oracle identity
	reqBody := map[string]any{
		"authority":        testAuthority,
		"oracle_authority": "NOT_HEX",
		"protocol_fee_bps": 1001,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/protocol/initialize", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Initialize(c); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "OracleAuthority", "32-char lowercase hex") {
		t.Fatalf("missing hex32 detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "ProtocolFeeBps", "less than or equal to 1000") {
		t.Fatalf("missing fee cap detail: %+v", er.Details)
	}
}

func TestInitialize_AlreadyInitialized(t *testing.T) {
	e := newEchoWithValidator()
	repo := &protocolmock.Repo{
		CreateFn: func(ctx context.Context, c *protoDomain.Config) error {
			return protoDomain.ErrAlreadyInitialized
		},
	}
	h := NewProtocolHandler(uc.NewUsecase(repo, uowmock.New()))

	reqBody := map[string]any{
		"authority":        testAuthority,
		"oracle_authority": testLender,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/protocol/initialize", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Initialize(c); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestGetConfig(t *testing.T) {
	e := echo.New()
	repo := &protocolmock.Repo{
		GetFn: func(ctx context.Context) (*protoDomain.Config, error) {
			return &protoDomain.Config{
				ID:              protoDomain.SingletonID,
				Authority:       testAuthority,
				OracleAuthority: testLender,
				ProtocolFeeBps:  250,
			}, nil
		},
	}
	h := NewProtocolHandler(uc.NewUsecase(repo, uowmock.New()))

	req := httptest.NewRequest(stdhttp.MethodGet, "/protocol/config", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetConfig(c); err != nil {
		t.Fatalf("GetConfig error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got protoDomain.Config
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.ProtocolFeeBps != 250 {
		t.Fatalf("fee = %d", got.ProtocolFeeBps)
	}
}

func TestUpdateConfig_NotAuthority(t *testing.T) {
	e := newEchoWithValidator()

	repo := &protocolmock.Repo{
		GetForUpdateFn: func(ctx context.Context) (*protoDomain.Config, error) {
			return &protoDomain.Config{
				ID:              protoDomain.SingletonID,
				Authority:       testAuthority,
				OracleAuthority: testLender,
			}, nil
		},
	}
	h := NewProtocolHandler(uc.NewUsecase(repo, uowmock.Passthrough(uow.Repos{Config: repo})))

	paused := true
	req := httptest.NewRequest(stdhttp.MethodPatch, "/protocol/config",
		mustJSON(map[string]any{"is_paused": paused}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Ax-Actor-Id", testBorrower) // not the authority
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.UpdateConfig(c); err != nil {
		t.Fatalf("UpdateConfig error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestUpdateConfig_PatchesPause(t *testing.T) {
	e := newEchoWithValidator()

	cfg := &protoDomain.Config{
		ID:              protoDomain.SingletonID,
		Authority:       testAuthority,
		OracleAuthority: testLender,
		ProtocolFeeBps:  500,
	}
	repo := &protocolmock.Repo{
		GetForUpdateFn: func(ctx context.Context) (*protoDomain.Config, error) { return cfg, nil },
	}
	h := NewProtocolHandler(uc.NewUsecase(repo, uowmock.Passthrough(uow.Repos{Config: repo})))

	req := httptest.NewRequest(stdhttp.MethodPatch, "/protocol/config",
		mustJSON(map[string]any{"is_paused": true}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Ax-Actor-Id", testAuthority)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.UpdateConfig(c); err != nil {
		t.Fatalf("UpdateConfig error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !cfg.IsPaused {
		t.Fatalf("pause not applied")
	}
	if cfg.ProtocolFeeBps != 500 || cfg.OracleAuthority != testLender {
		t.Fatalf("untouched fields changed: %+v", cfg)
	}
}
