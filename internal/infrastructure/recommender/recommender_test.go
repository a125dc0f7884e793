package recommender_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nutricart-tech/go-backend/internal/cfg"
	"github.com/nutricart-tech/go-backend/internal/infrastructure/recommender"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *recommender.Recommender {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return recommender.NewRecommender(
		&cfg.MLServiceCfg{URL: srv.URL, Timeout: 2 * time.Second},
		logger.NewSlogLogger(),
	)
}

func extID(v int64) *int64 { return &v }

func TestRecommender_SendsExpectedPayload(t *testing.T) {
	var got map[string]any

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/recommend", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]any{"recommendations": []int64{5, 3, 9}})
	})

	ids, err := client.Recommend(t.Context(), usecase.NewRecommendReq(extID(100500), []int64{7, 1}, 0.3))
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 9}, ids)

	assert.Equal(t, float64(100500), got["user_id"])
	assert.Equal(t, []any{float64(7), float64(1)}, got["basket_ids"])
	assert.InDelta(t, 0.3, got["gamma"], 1e-9)
}

func TestRecommender_NilBasketSerializedAsEmptyArray(t *testing.T) {
	var raw map[string]json.RawMessage

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		json.NewEncoder(w).Encode(map[string]any{"recommendations": []int64{}})
	})

	_, err := client.Recommend(t.Context(), usecase.NewRecommendReq(nil, nil, 0.5))
	require.NoError(t, err)

	assert.JSONEq(t, "null", string(raw["user_id"]))
	assert.JSONEq(t, "[]", string(raw["basket_ids"]))
}

func TestRecommender_Non2xxIsUnavailable(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := client.Recommend(t.Context(), usecase.NewRecommendReq(extID(1), nil, 0.5))
	require.ErrorIs(t, err, e.ErrRecommendationUnavailable)
}

func TestRecommender_MalformedBodyIsUnavailable(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.Recommend(t.Context(), usecase.NewRecommendReq(extID(1), nil, 0.5))
	require.ErrorIs(t, err, e.ErrRecommendationUnavailable)
}

func TestRecommender_ConnectionRefusedIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := recommender.NewRecommender(
		&cfg.MLServiceCfg{URL: url, Timeout: time.Second},
		logger.NewSlogLogger(),
	)

	_, err := client.Recommend(t.Context(), usecase.NewRecommendReq(extID(1), nil, 0.5))
	require.ErrorIs(t, err, e.ErrRecommendationUnavailable)
}
