package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/marketplace-api/internal/handlers"
	"github.com/yukikurage/marketplace-api/internal/repository"
	"github.com/yukikurage/marketplace-api/internal/services"
	"github.com/yukikurage/marketplace-api/internal/testutil"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	log := zap.NewNop()

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	offerRepo := repository.NewOfferRepository(db)

	return NewRouter(
		handlers.NewUserHandler(services.NewUserService(userRepo), log, true),
		handlers.NewOrderHandler(services.NewOrderService(orderRepo, userRepo), log, true),
		handlers.NewOfferHandler(services.NewOfferService(offerRepo, orderRepo, userRepo), log, true),
		log,
	)
}

func TestNewRouter_Health(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "{\n    \"message\": \"Marketplace API is running\",\n    \"status\": \"ok\"\n}", w.Body.String())
}

func TestNewRouter_CollectionRoutes(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/users/", "/orders/", "/offers/"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestNewRouter_ItemRouteNotFound(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/users/1/", "/orders/1/", "/offers/1/"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "NOT_FOUND", path)
	}
}

func TestNewRouter_UnknownMethod(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/users/1/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
