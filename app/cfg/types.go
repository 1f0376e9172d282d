package cfg

type Cfg struct {
	// Credentials
	MapsAPIKey string
	LLMAPIKey  string

	// Text-generation service
	LLMBaseURL   string
	LLMModel     string
	LLMMaxTokens int
	LLMTimeout   int

	// Pipeline configuration
	CampusConfig   string
	OutputPath     string
	ArchiveDBPath  string
	WorkerCount    int
	GeocodeTimeout int
	HTTPTimeout    int

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
