package config

// CampusConfig describes a single campus event source. It is loaded from a
// YAML file so a deployment can point the pipeline at a different school
// without rebuilding.
type CampusConfig struct {
	Campus    CampusInfo        `yaml:"campus"`
	Discovery DiscoverySettings `yaml:"discovery"`
	Images    ImageSettings     `yaml:"images"`
}

type CampusInfo struct {
	// Name prefixes every place-search query, scoping lookups to campus
	// buildings (e.g. "UNLV Student Union").
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
}

type DiscoverySettings struct {
	URL  string `yaml:"url"`
	Take int    `yaml:"take"`
}

type ImageSettings struct {
	// CDNTemplate must contain a single %s placeholder for the event's
	// imagePath identifier.
	CDNTemplate string `yaml:"cdn_template"`
	FallbackURL string `yaml:"fallback_url"`
}
