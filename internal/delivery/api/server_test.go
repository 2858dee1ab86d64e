package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sitesnap/config"
	"sitesnap/internal/delivery/api/router"
	"sitesnap/internal/delivery/api/router/handler"
	deliverycontext "sitesnap/internal/delivery/context"
	"sitesnap/internal/domain/entity"
	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/infra/metrics"
	mockUsecase "sitesnap/internal/mocks/usecase"
	"sitesnap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serverFixtures holds all test dependencies for the storefront server.
type serverFixtures struct {
	echo       *echo.Echo
	storefront *mockUsecase.MockStorefrontUsecase
	metrics    *metrics.Metrics
}

func createTestServer(t *testing.T) serverFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	storefront := mockUsecase.NewMockStorefrontUsecase(t)
	m := metrics.New("sitesnap_test")

	e := NewEcho(cfg, newDiscardLogger(), m, router.RouterParams{
		StorefrontHandler: handler.NewStorefrontHandler(handler.StorefrontHandlerParams{
			StorefrontUC: storefront,
			Logger:       newDiscardLogger(),
		}),
		MetricsHandler: m.Handler(),
	})

	return serverFixtures{echo: e, storefront: storefront, metrics: m}
}

func (fx serverFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
	Meta *struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_GetCatalog(t *testing.T) {
	fx := createTestServer(t)
	fx.storefront.EXPECT().Catalog(mock.Anything).Return(&entity.StorefrontCatalog{
		Brand:    entity.StorefrontBrand{Name: "Ama's Naturals"},
		Products: []entity.StorefrontProduct{{ID: "p1", Name: "Soap", InStock: true}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/storefront", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := fx.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	require.NotNil(t, env.Meta)
	assert.Equal(t, "req-7", env.Meta.RequestID)

	var catalog entity.StorefrontCatalog
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	assert.Equal(t, "Ama's Naturals", catalog.Brand.Name)
	assert.Len(t, catalog.Products, 1)

	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/storefront", "200")), 0)
}

func TestServer_Checkout(t *testing.T) {
	fx := createTestServer(t)
	fx.storefront.EXPECT().Checkout(mock.Anything, mock.MatchedBy(func(cart entity.Cart) bool {
		return len(cart.Items) == 1 && cart.Items[0].Quantity == 2
	})).Return(&entity.MessageLink{URL: "https://wa.me/1?text=x", Message: "x", Total: 13}, nil).Once()

	body := `{"items":[{"productId":"p1","name":"Soap","price":6.5,"quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/storefront/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := fx.do(req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var link entity.MessageLink
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &link))
	assert.InDelta(t, 13.0, link.Total, 1e-9)
}

func TestServer_Checkout_EmptyCartIsRejected(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/storefront/checkout", strings.NewReader(`{"items":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := fx.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.NotEmpty(t, env.Error.Details)

	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/storefront/checkout", "400")), 0)
}

func TestServer_Inquiry(t *testing.T) {
	fx := createTestServer(t)
	fx.storefront.EXPECT().Inquiry(mock.Anything, usecase.InquiryInput{ProductID: "p1", Quantity: 3}).
		Return(&entity.MessageLink{Message: "Hi! I'm interested in Soap (3 units)"}, nil).Once()

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/storefront/products/p1/inquiry?quantity=3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "3 units")
}

func TestServer_Inquiry_BadQuantity(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/storefront/products/p1/inquiry?quantity=lots", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Inquiry_UnknownProduct(t *testing.T) {
	fx := createTestServer(t)
	fx.storefront.EXPECT().Inquiry(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrNotFound.WithDetails("product nope")).Once()

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/storefront/products/nope/inquiry", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "product nope", env.Error.Details)
}

func TestServer_QRCode(t *testing.T) {
	fx := createTestServer(t)
	fx.storefront.EXPECT().QRCode(mock.Anything).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/storefront/qr", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestServer_UnknownErrorIsHidden(t *testing.T) {
	fx := createTestServer(t)
	fx.storefront.EXPECT().Catalog(mock.Anything).Return(nil, errors.New("bucket exploded")).Once()

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/storefront", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "bucket exploded")
}

func TestServer_Metrics(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
