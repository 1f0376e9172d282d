package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone    = "America/Los_Angeles"
	defaultTake        = 10
	defaultCDNTemplate = "https://se-images.campuslabs.com/clink/images/%s"
	defaultFallbackURL = "https://se-images.campuslabs.com/clink/images/default-event-cover.jpg"
)

// Load reads and validates a campus source configuration file.
func Load(path string) (*CampusConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campus config: %w", err)
	}

	var config CampusConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse campus config: %w", err)
	}

	setDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid campus config %s: %w", path, err)
	}

	return &config, nil
}

func setDefaults(config *CampusConfig) {
	if config.Campus.Timezone == "" {
		config.Campus.Timezone = defaultTimezone
	}
	if config.Discovery.Take == 0 {
		config.Discovery.Take = defaultTake
	}
	if config.Images.CDNTemplate == "" {
		config.Images.CDNTemplate = defaultCDNTemplate
	}
	if config.Images.FallbackURL == "" {
		config.Images.FallbackURL = defaultFallbackURL
	}
}

func validate(config *CampusConfig) error {
	if config.Campus.Name == "" {
		return fmt.Errorf("campus name is required")
	}
	if config.Discovery.URL == "" {
		return fmt.Errorf("discovery URL is required")
	}
	if config.Discovery.Take < 0 {
		return fmt.Errorf("discovery take must be non-negative")
	}
	if !strings.Contains(config.Images.CDNTemplate, "%s") {
		return fmt.Errorf("image CDN template must contain a %%s placeholder")
	}
	if _, err := time.LoadLocation(config.Campus.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", config.Campus.Timezone, err)
	}
	return nil
}
