package scoring

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/providers"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/clients/scorer"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/observability"
)

// ProviderConfig configures scoring providers
type ProviderConfig struct {
	Provider       string
	BaseURL        string
	TimeoutSeconds int
}

// NewScoringProvider creates the configured scoring provider, using the mock
// when no scorer endpoint is configured
func NewScoringProvider(cfg ProviderConfig, metrics *observability.Metrics) providers.ScoringProvider {
	if cfg.Provider != "http" || cfg.BaseURL == "" {
		log.Info().Msg("Using mock scoring provider")
		return NewMockAdapter()
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	client := scorer.NewClient(cfg.BaseURL, timeout)
	log.Info().Str("base_url", cfg.BaseURL).Dur("timeout", timeout).Msg("Using HTTP scoring provider")
	return NewHTTPAdapter(client, metrics)
}
