package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" env:"SFTT_PORT" validate:"gte=0,lte=65535"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" env:"SFTT_LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
}

// TransitConfig selects and configures the transit data providers
type TransitConfig struct {
	// Provider serves journey patterns; only the 511 API has them.
	Provider string `yaml:"provider" validate:"omitempty,oneof=fiveeleven"`
	// VisitProvider serves upcoming arrivals.
	VisitProvider  string `yaml:"visitProvider" env:"SFTT_VISIT_PROVIDER" validate:"omitempty,oneof=fiveeleven gtfsrt"`
	Agency         string `yaml:"agency" validate:"omitempty"`
	APIKey         string `yaml:"apiKey" env:"FIVE_ELEVEN_API_KEY"`
	BaseURL        string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS      int    `yaml:"timeoutMS" validate:"gte=0"`
	TripUpdatesURL string `yaml:"tripUpdatesURL" env:"SFTT_TRIP_UPDATES_URL" validate:"omitempty,url"`
}

// StoreConfig selects the user store backend
type StoreConfig struct {
	Driver string `yaml:"driver" env:"SFTT_STORE_DRIVER" validate:"omitempty,oneof=memory file dynamodb"`
	Path   string `yaml:"path" env:"SFTT_STORE_PATH"`
	// Table overrides the stage-derived DynamoDB table name.
	Table  string `yaml:"table" env:"SFTT_STORE_TABLE"`
	Stage  string `yaml:"stage" env:"STAGE"`
	Region string `yaml:"region" env:"AWS_REGION"`
}

// SetupConfig tunes the set-home-stop dialog
type SetupConfig struct {
	StrictStopResolution bool `yaml:"strictStopResolution"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Transit TransitConfig `yaml:"transit"`
	Store   StoreConfig   `yaml:"store"`
	Setup   SetupConfig   `yaml:"setup"`
}
