package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nutricart-tech/go-backend/internal/domain"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type stubAuthUC struct {
	user *domain.User
}

func (s *stubAuthUC) Signup(_ context.Context, _ *usecase.SignupReq) (*usecase.AuthRes, error) {
	return nil, e.ErrInternalServerError
}

func (s *stubAuthUC) Login(_ context.Context, _ *usecase.LoginReq) (*usecase.AuthRes, error) {
	return nil, e.ErrInvalidCredentials
}

func (s *stubAuthUC) UserByToken(_ context.Context, token string) (*domain.User, error) {
	if token != testToken {
		return nil, e.ErrUnauthorized
	}

	return s.user, nil
}

type stubCartUC struct{}

func (stubCartUC) AddItem(_ context.Context, _ int64, _ *usecase.AddItemReq) error { return nil }
func (stubCartUC) SetQuantity(_ context.Context, _ int64, _ *usecase.SetQuantityReq) error {
	return nil
}
func (stubCartUC) RemoveItem(_ context.Context, _ int64, _ int64) error { return nil }
func (stubCartUC) GetCart(_ context.Context, _ int64) ([]usecase.CartEntryView, error) {
	return []usecase.CartEntryView{}, nil
}

type stubCatalogUC struct{}

func (stubCatalogUC) GetProducts(_ context.Context) ([]usecase.ProductView, error) {
	return []usecase.ProductView{}, nil
}

type stubRecommendationUC struct {
	gamma float64
	calls int
}

func (s *stubRecommendationUC) Recommend(_ context.Context, _ *domain.User, gamma float64) ([]usecase.ProductView, error) {
	s.calls++
	s.gamma = gamma

	return []usecase.ProductView{}, nil
}

func newTestRouter(recUC usecase.RecommendationUC) *chi.Mux {
	log := logger.NewSlogLogger()
	mux := chi.NewRouter()

	router := NewRouter(mux, log)
	router.Init(&stubAuthUC{user: &domain.User{ID: 1}}, stubCatalogUC{}, stubCartUC{}, recUC)

	return mux
}

func postRecommendations(mux *chi.Mux, body string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func TestRecommendationsRoute_PostWithGammaBody(t *testing.T) {
	recUC := &stubRecommendationUC{}
	mux := newTestRouter(recUC)

	rec := postRecommendations(mux, `{"gamma":0.7}`, testToken)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, recUC.calls)
	assert.InDelta(t, 0.7, recUC.gamma, 1e-9)
}

func TestRecommendationsRoute_EmptyBodyUsesDefaultGamma(t *testing.T) {
	recUC := &stubRecommendationUC{}
	mux := newTestRouter(recUC)

	rec := postRecommendations(mux, "", testToken)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, recUC.calls)
	assert.InDelta(t, defaultGamma, recUC.gamma, 1e-9)
}

func TestRecommendationsRoute_MissingGammaFieldUsesDefault(t *testing.T) {
	recUC := &stubRecommendationUC{}
	mux := newTestRouter(recUC)

	rec := postRecommendations(mux, `{}`, testToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, defaultGamma, recUC.gamma, 1e-9)
}

func TestRecommendationsRoute_NonNumericGammaIsBadRequest(t *testing.T) {
	recUC := &stubRecommendationUC{}
	mux := newTestRouter(recUC)

	rec := postRecommendations(mux, `{"gamma":"high"}`, testToken)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, recUC.calls)
}

func TestRecommendationsRoute_RequiresToken(t *testing.T) {
	recUC := &stubRecommendationUC{}
	mux := newTestRouter(recUC)

	rec := postRecommendations(mux, `{"gamma":0.5}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, recUC.calls)
}
