package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storemgr/internal/domain/entity"
	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/infra/cache"
	mockUC "storemgr/internal/mocks/usecase"
	"storemgr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryCache is an in-process ReportCache for read-through tests.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	payload, ok := c.entries[key]

	return payload, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, payload []byte) error {
	c.entries[key] = payload

	return nil
}

func (c *memoryCache) Flush(context.Context) error {
	c.entries = make(map[string][]byte)

	return nil
}

func fixtureManufacturerReport() *usecase.ManufacturerSalesReport {
	return &usecase.ManufacturerSalesReport{
		NumManufacturer: 2,
		Records: []usecase.ManufacturerSalesRecord{
			{ManufacturerID: 1, ManufacturerName: "Alpha",
				TotalSales: entity.Sum(780), PercentSales: entity.Sum(100)},
			{ManufacturerID: 2, ManufacturerName: "Beta",
				TotalSales: entity.NoRecord(), PercentSales: entity.NoRecord()},
		},
	}
}

func TestReportHandler_ManufacturerSales_RendersMarker(t *testing.T) {
	uc := new(mockUC.MockReportUsecase)
	uc.On("ManufacturerSales", mock.Anything).Return(fixtureManufacturerReport(), nil)
	h := NewReportHandler(uc, cache.NewNoopReportCache(), discardLogger())
	e := newTestEcho()

	code, envelope := perform(t, e,
		httptest.NewRequest(http.MethodGet, "/api/manufacturer_sales", nil),
		h.ManufacturerSales)

	assert.Equal(t, http.StatusOK, code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["num_manufacturer"])

	records, ok := data["records"].([]any)
	require.True(t, ok)
	require.Len(t, records, 2)

	alpha := records[0].(map[string]any)
	assert.Equal(t, float64(780), alpha["total_sales"])

	beta := records[1].(map[string]any)
	assert.Equal(t, entity.NoRecordMarker, beta["total_sales"])
	assert.Equal(t, entity.NoRecordMarker, beta["percent_sales"])
}

func TestReportHandler_ManufacturerSales_ServesFromCache(t *testing.T) {
	uc := new(mockUC.MockReportUsecase)
	uc.On("ManufacturerSales", mock.Anything).Return(fixtureManufacturerReport(), nil).Once()
	h := NewReportHandler(uc, newMemoryCache(), discardLogger())
	e := newTestEcho()

	for i := 0; i < 2; i++ {
		code, envelope := perform(t, e,
			httptest.NewRequest(http.MethodGet, "/api/manufacturer_sales", nil),
			h.ManufacturerSales)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(http.StatusOK), envelope["status"])
	}

	// The second request was answered from the cache.
	uc.AssertNumberOfCalls(t, "ManufacturerSales", 1)
}

func TestReportHandler_CategorySalesForYear(t *testing.T) {
	year := 2023
	uc := new(mockUC.MockReportUsecase)
	uc.On("CategorySales", mock.Anything, &year).Return(&usecase.CategorySalesReport{
		NumCategory: 1,
		Year:        &year,
		Records: []usecase.CategorySalesRecord{
			{CategoryID: 1, CategoryName: "Dairy", TotalSales: entity.Sum(430)},
		},
	}, nil)
	h := NewReportHandler(uc, cache.NewNoopReportCache(), discardLogger())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/category_sales/2023", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("year")
	c.SetParamValues("2023")

	require.NoError(t, h.CategorySalesForYear(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestReportHandler_InvalidYear(t *testing.T) {
	uc := new(mockUC.MockReportUsecase)
	h := NewReportHandler(uc, cache.NewNoopReportCache(), discardLogger())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/total_sales_store/twenty", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("year")
	c.SetParamValues("twenty")

	err := h.StoreYearlySales(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "StoreYearlySales")
}

func TestReportHandler_ReportUnavailable(t *testing.T) {
	uc := new(mockUC.MockReportUsecase)
	uc.On("GenderCategorySales", mock.Anything).Return(nil, domainerrors.ErrReportUnavailable)
	h := NewReportHandler(uc, cache.NewNoopReportCache(), discardLogger())
	e := newTestEcho()

	code, envelope := perform(t, e,
		httptest.NewRequest(http.MethodGet, "/api/gender_category", nil),
		h.GenderCategorySales)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Bad request: could not build report", envelope["message"])
}
