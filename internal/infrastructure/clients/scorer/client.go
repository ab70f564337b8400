package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
)

// Client is the HTTP interface to the external pathway scorer
type Client interface {
	ScoreTree(ctx context.Context, req ScoreTreeRequest) (*ScoreTreeResponse, error)
	RecommendPathways(ctx context.Context, req RecommendRequest) (*RecommendResponse, error)
}

// HTTPClient talks to the scorer over JSON/HTTP with a bounded timeout
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NodeProjection is the compact node view sent to the scorer
type NodeProjection struct {
	ID              string              `json:"id"`
	NodeType        entities.NodeType   `json:"nodeType"`
	Title           string              `json:"title"`
	ActionType      *entities.ActionType `json:"actionType,omitempty"`
	DecisionFactors []string            `json:"decisionFactors,omitempty"`
	BaseConfidence  float64             `json:"baseConfidence"`
}

// ScoreTreeRequest is the score-tree call payload
type ScoreTreeRequest struct {
	PathwayID      string                   `json:"-"`
	PatientContext *entities.PatientContext `json:"patientContext"`
	Nodes          []NodeProjection         `json:"nodes"`
}

// ScoreTreeResponse carries per-node scores plus the scoring model identity
type ScoreTreeResponse struct {
	ModelVersion string                        `json:"modelVersion"`
	Scores       map[string]entities.NodeScore `json:"scores"`
}

// RecommendRequest is the pathway recommendation call payload
type RecommendRequest struct {
	PatientContext *entities.PatientContext `json:"patientContext"`
	MaxResults     int                      `json:"maxResults"`
}

// RecommendedPathway is one scorer-ranked pathway
type RecommendedPathway struct {
	PathwayID    string   `json:"pathwayId"`
	MatchScore   float64  `json:"matchScore"`
	MatchReasons []string `json:"matchReasons"`
	MLConfidence *float64 `json:"mlConfidence,omitempty"`
}

// RecommendResponse is the recommendation call result
type RecommendResponse struct {
	ModelVersion    string               `json:"modelVersion"`
	Recommendations []RecommendedPathway `json:"recommendations"`
}

// NewClient creates a scorer client with the given request timeout
func NewClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ScoreTree scores a pathway's nodes against a patient context
func (c *HTTPClient) ScoreTree(ctx context.Context, req ScoreTreeRequest) (*ScoreTreeResponse, error) {
	endpoint := fmt.Sprintf("%s/pathways/%s/score-tree", c.baseURL, url.PathEscape(req.PathwayID))
	out := &ScoreTreeResponse{}
	if err := c.postJSON(ctx, endpoint, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecommendPathways asks the scorer to rank pathways for a patient context
func (c *HTTPClient) RecommendPathways(ctx context.Context, req RecommendRequest) (*RecommendResponse, error) {
	endpoint := fmt.Sprintf("%s/pathways/recommend", c.baseURL)
	out := &RecommendResponse{}
	if err := c.postJSON(ctx, endpoint, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) postJSON(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}

	return nil
}
