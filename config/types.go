package config

// Station pairs a stop ID from the transport.rest API with the
// human-readable name used in artifact filenames.
type Station struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name" validate:"required"`
}

// APIConfig contains upstream REST API configuration
type APIConfig struct {
	BaseURL    string `yaml:"baseURL" validate:"required,url"`
	Duration   int    `yaml:"duration" validate:"gte=0"`
	MaxResults int    `yaml:"maxResults" validate:"gte=0"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
}

// S3Config contains object store configuration
type S3Config struct {
	Bucket string `yaml:"bucket" validate:"required"`
	Region string `yaml:"region" validate:"required"`
}

// StagingConfig contains local staging directory configuration
type StagingConfig struct {
	Dir string `yaml:"dir"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	API        APIConfig     `yaml:"api"`
	S3         S3Config      `yaml:"s3"`
	Stations   []Station     `yaml:"stations" validate:"required,min=1,dive"`
	Directions []string      `yaml:"directions"`
	Staging    StagingConfig `yaml:"staging"`
}

// DirectionAllowed reports whether a departure direction passes the allow-list.
func (c AppConfig) DirectionAllowed(direction string) bool {
	for _, d := range c.Directions {
		if d == direction {
			return true
		}
	}
	return false
}
