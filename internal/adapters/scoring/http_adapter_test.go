package scoring_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/adapters/scoring"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/clients/scorer"
)

func testNodes() []*entities.PathwayNode {
	return []*entities.PathwayNode{
		{ID: "n1", NodeType: entities.NodeTypeRoot, Title: "Root", BaseConfidence: 0.9},
		{ID: "n2", NodeType: entities.NodeTypeRecommendation, Title: "Leaf", BaseConfidence: 0.5},
	}
}

func testContext() *entities.PatientContext {
	return &entities.PatientContext{PatientID: "pat-1", ConditionCodes: []string{"I10"}}
}

func TestHTTPAdapter_ScoreTreeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pathways/pw-1/score-tree", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"modelVersion": "risk-model-v3",
			"scores": {
				"n1": {"confidence": 0.95, "isRecommended": true},
				"n2": {"confidence": 0.4, "isRecommended": false}
			}
		}`))
	}))
	defer server.Close()

	adapter := scoring.NewHTTPAdapter(scorer.NewClient(server.URL, time.Second), nil)
	score, err := adapter.ScoreTree(context.Background(), "pw-1", testNodes(), testContext())

	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, "risk-model-v3", score.ModelVersion)
	assert.Equal(t, 0.95, score.Scores["n1"].Confidence)
	assert.True(t, score.Scores["n1"].IsRecommended)
	assert.False(t, score.Scores["n2"].IsRecommended)
}

func TestHTTPAdapter_ServerErrorDegradesSilently(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := scoring.NewHTTPAdapter(scorer.NewClient(server.URL, time.Second), nil)

	score, err := adapter.ScoreTree(context.Background(), "pw-1", testNodes(), testContext())
	assert.NoError(t, err)
	assert.Nil(t, score)

	matches, err := adapter.RecommendPathways(context.Background(), testContext(), 5)
	assert.NoError(t, err)
	assert.Nil(t, matches)
}

func TestHTTPAdapter_TimeoutDegradesSilently(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	adapter := scoring.NewHTTPAdapter(scorer.NewClient(server.URL, 20*time.Millisecond), nil)
	score, err := adapter.ScoreTree(context.Background(), "pw-1", testNodes(), testContext())

	assert.NoError(t, err)
	assert.Nil(t, score)
}

func TestHTTPAdapter_GarbageResponseDegradesSilently(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	adapter := scoring.NewHTTPAdapter(scorer.NewClient(server.URL, time.Second), nil)
	score, err := adapter.ScoreTree(context.Background(), "pw-1", testNodes(), testContext())

	assert.NoError(t, err)
	assert.Nil(t, score)
}

func TestHTTPAdapter_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	adapter := scoring.NewHTTPAdapter(scorer.NewClient(server.URL, time.Second), nil)
	for i := 0; i < 8; i++ {
		score, err := adapter.ScoreTree(context.Background(), "pw-1", testNodes(), testContext())
		assert.NoError(t, err)
		assert.Nil(t, score)
	}

	// the breaker trips after five consecutive failures; later calls fail fast
	assert.Equal(t, 5, hits)
}

func TestMockAdapter_BoostsMatchingFactors(t *testing.T) {
	adapter := scoring.NewMockAdapter()
	nodes := []*entities.PathwayNode{
		{ID: "match", BaseConfidence: 0.5, DecisionFactors: []string{"I10"}},
		{ID: "plain", BaseConfidence: 0.5},
	}

	score, err := adapter.ScoreTree(context.Background(), "pw-1", nodes, testContext())

	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, scoring.MockModelVersion, score.ModelVersion)
	assert.InDelta(t, 0.6, score.Scores["match"].Confidence, 1e-9)
	assert.InDelta(t, 0.5, score.Scores["plain"].Confidence, 1e-9)
	assert.True(t, score.Scores["match"].IsRecommended)
	assert.False(t, score.Scores["plain"].IsRecommended)
}
