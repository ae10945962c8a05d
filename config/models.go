package config

type Config struct {
	CredentialsPath string `mapstructure:"credentials_path" json:"credentials_path"`
	SheetID         string `mapstructure:"sheet_id" json:"sheet_id"`
	WorksheetName   string `mapstructure:"worksheet_name" json:"worksheet_name"`
	Enabled         bool   `mapstructure:"enabled" json:"enabled"`
}

// Env is the process-level configuration read from the environment.
type Env struct {
	ConfigPath string
	LogLevel   string
}
