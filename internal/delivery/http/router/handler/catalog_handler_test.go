package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	custommiddleware "storemgr/internal/delivery/http/middleware"
	"storemgr/internal/delivery/http/validator"
	domainerrors "storemgr/internal/domain/errors"
	mockUC "storemgr/internal/mocks/usecase"
	"storemgr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// perform runs one handler through the echo error chain and decodes the
// envelope.
func perform(t *testing.T, e *echo.Echo, req *http.Request, h echo.HandlerFunc) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec.Code, envelope
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestCatalogHandler_Insert_Success(t *testing.T) {
	uc := new(mockUC.MockCatalogUsecase)
	uc.On("Insert", mock.Anything, "store", map[string]any{"branch_name": "Thamel"}).
		Return("store", nil)
	h := NewCatalogHandler(uc, discardLogger())
	e := newTestEcho()

	code, envelope := perform(t, e,
		jsonRequest(http.MethodPost, "/api/insert_store", `{"branch_name":"Thamel"}`),
		h.Insert("store"))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(http.StatusOK), envelope["status"])
	assert.Equal(t, "Successfully inserted store record into database", envelope["message"])
	assert.Equal(t, map[string]any{"branch_name": "Thamel"}, envelope["data"])
}

func TestCatalogHandler_Insert_EmptyBody(t *testing.T) {
	uc := new(mockUC.MockCatalogUsecase)
	uc.On("Insert", mock.Anything, "store", map[string]any{}).
		Return("", domainerrors.ErrEmptyInput)
	h := NewCatalogHandler(uc, discardLogger())
	e := newTestEcho()

	code, envelope := perform(t, e,
		jsonRequest(http.MethodPost, "/api/insert_store", ``),
		h.Insert("store"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Bad request: empty input json", envelope["message"])
	assert.Equal(t, map[string]any{}, envelope["data"])
}

func TestCatalogHandler_Insert_Duplicate(t *testing.T) {
	uc := new(mockUC.MockCatalogUsecase)
	uc.On("Insert", mock.Anything, "category", mock.Anything).
		Return("", domainerrors.ErrDuplicateValue)
	h := NewCatalogHandler(uc, discardLogger())
	e := newTestEcho()

	code, envelope := perform(t, e,
		jsonRequest(http.MethodPost, "/api/insert_category", `{"category_name":"Dairy"}`),
		h.Insert("category"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Bad request: record exists in database", envelope["message"])
}

func TestCatalogHandler_Insert_MalformedJSON(t *testing.T) {
	uc := new(mockUC.MockCatalogUsecase)
	h := NewCatalogHandler(uc, discardLogger())
	e := newTestEcho()

	code, envelope := perform(t, e,
		jsonRequest(http.MethodPost, "/api/insert_store", `{"branch_name"`),
		h.Insert("store"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Bad request: invalid input", envelope["message"])
	uc.AssertNotCalled(t, "Insert")
}

func TestCatalogHandler_List(t *testing.T) {
	uc := new(mockUC.MockCatalogUsecase)
	uc.On("List", mock.Anything, "store").Return(&usecase.TableDump{
		NumRecords: 1,
		Records:    []map[string]any{{"store_id": float64(1), "branch_name": "Thamel"}},
	}, nil)
	h := NewCatalogHandler(uc, discardLogger())
	e := newTestEcho()

	code, envelope := perform(t, e,
		httptest.NewRequest(http.MethodGet, "/api/store/", nil),
		h.List("store"))

	assert.Equal(t, http.StatusOK, code)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["num_records"])
}
