package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Credentials. Both are required: running the pipeline without them
	// would produce an artifact with no enrichment and no coordinates.
	MapsAPIKey string `long:"maps-api-key" env:"MAPS_API_KEY" description:"Place-search service API key (required)" required:"true"`
	LLMAPIKey  string `long:"llm-api-key" env:"LLM_API_KEY" description:"Text-generation service API key (required)" required:"true"`

	// Text-generation service
	LLMBaseURL   string `long:"llm-base-url" env:"LLM_BASE_URL" default:"https://api.featherless.ai/v1" description:"Base URL of the OpenAI-compatible chat completions API"`
	LLMModel     string `long:"llm-model" env:"LLM_MODEL" default:"deepseek-ai/DeepSeek-V3.1-Terminus" description:"Model used for copy enrichment"`
	LLMMaxTokens int    `long:"llm-max-tokens" env:"LLM_MAX_TOKENS" default:"4096" description:"Completion token limit for the enrichment request"`
	LLMTimeout   int    `long:"llm-timeout" env:"LLM_TIMEOUT" default:"120" description:"Enrichment request timeout in seconds"`

	// Pipeline configuration
	CampusConfig   string `long:"campus-config" env:"CAMPUS_CONFIG" default:"./campus.yaml" description:"Path to the campus source configuration file"`
	OutputPath     string `long:"output" env:"OUTPUT_PATH" default:"./data/events.json" description:"Path of the events artifact consumed by the map front end"`
	ArchiveDBPath  string `long:"archive-db" env:"ARCHIVE_DB_PATH" description:"Path to the sqlite run archive (optional, archiving disabled when empty)"`
	WorkerCount    int    `long:"worker-count" env:"WORKER_COUNT" default:"4" description:"Number of concurrent geocoding workers"`
	GeocodeTimeout int    `long:"geocode-timeout" env:"GEOCODE_TIMEOUT" default:"10" description:"Per-lookup geocoding timeout in seconds"`
	HTTPTimeout    int    `long:"http-timeout" env:"HTTP_TIMEOUT" default:"30" description:"Timeout in seconds for discovery and geocoding HTTP requests"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Campus Radar Sync/1.0" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		MapsAPIKey:     raw.MapsAPIKey,
		LLMAPIKey:      raw.LLMAPIKey,
		LLMBaseURL:     raw.LLMBaseURL,
		LLMModel:       raw.LLMModel,
		LLMMaxTokens:   raw.LLMMaxTokens,
		LLMTimeout:     raw.LLMTimeout,
		CampusConfig:   raw.CampusConfig,
		OutputPath:     raw.OutputPath,
		ArchiveDBPath:  raw.ArchiveDBPath,
		WorkerCount:    raw.WorkerCount,
		GeocodeTimeout: raw.GeocodeTimeout,
		HTTPTimeout:    raw.HTTPTimeout,
		UserAgent:      raw.UserAgent,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
