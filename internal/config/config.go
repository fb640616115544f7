package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Reconcile application
type Config struct {
	// API configuration
	API struct {
		Host             string `mapstructure:"host"`
		Port             int    `mapstructure:"port"`
		ReadTimeoutSecs  int    `mapstructure:"read_timeout_secs"`
		WriteTimeoutSecs int    `mapstructure:"write_timeout_secs"`
		IdleTimeoutSecs  int    `mapstructure:"idle_timeout_secs"`
	} `mapstructure:"api"`

	// Matching configuration
	Matching struct {
		Scorer           string  `mapstructure:"scorer"`
		CandidateLimit   int     `mapstructure:"candidate_limit"`
		MinScore         float64 `mapstructure:"min_score"`
		CheapWeight      float64 `mapstructure:"cheap_weight"`
		KeywordWeight    float64 `mapstructure:"keyword_weight"`
		DistinctiveBonus float64 `mapstructure:"distinctive_bonus"`
		CountryAware     bool    `mapstructure:"country_aware"`
		Workers          int     `mapstructure:"workers"`
	} `mapstructure:"matching"`

	// Normalization configuration
	Normalization struct {
		LegalSuffixes    []string `mapstructure:"legal_suffixes"`
		SuffixPhrases    []string `mapstructure:"suffix_phrases"`
		Stopwords        []string `mapstructure:"stopwords"`
		MinKeywordLength int      `mapstructure:"min_keyword_length"`
	} `mapstructure:"normalization"`

	// Countries maps free-text country labels to canonical codes
	Countries map[string]string `mapstructure:"countries"`

	// Reference pool configuration
	Reference struct {
		Path          string `mapstructure:"path"`
		NameColumn    string `mapstructure:"name_column"`
		CountryColumn string `mapstructure:"country_column"`
		IDColumn      string `mapstructure:"id_column"`
	} `mapstructure:"reference"`

	// Logging configuration
	Logging struct {
		Level       string `mapstructure:"level"`
		Development bool   `mapstructure:"development"`
	} `mapstructure:"logging"`
}

// Load loads the configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// If config file is provided, read it
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in the current directory
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("RECONCILE")

	// Try to read config file (don't return error if not found)
	_ = v.ReadInConfig()

	// Unmarshal the config
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns the default configuration without reading any file
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		// Defaults always unmarshal into the struct they were written for
		panic(err)
	}
	return &config
}

// setDefaults sets default values for the configuration
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.read_timeout_secs", 30)
	v.SetDefault("api.write_timeout_secs", 30)
	v.SetDefault("api.idle_timeout_secs", 60)

	// Matching defaults
	v.SetDefault("matching.scorer", "token_set")
	v.SetDefault("matching.candidate_limit", 30)
	v.SetDefault("matching.min_score", 15.0)
	v.SetDefault("matching.cheap_weight", 0.4)
	v.SetDefault("matching.keyword_weight", 0.6)
	v.SetDefault("matching.distinctive_bonus", 10.0)
	v.SetDefault("matching.country_aware", true)
	v.SetDefault("matching.workers", 0)

	// Normalization defaults
	v.SetDefault("normalization.legal_suffixes", []string{
		"sa", "sac", "saa", "eirl", "ltd", "inc", "spa",
	})
	v.SetDefault("normalization.suffix_phrases", []string{
		"y filiales",
	})
	v.SetDefault("normalization.stopwords", []string{
		// Legal suffixes
		"sa", "sac", "saa", "eirl", "ltd", "inc", "spa", "corp", "group", "grupo",
		// Articles and prepositions
		"de", "del", "la", "el", "los", "las", "y", "e", "en", "a", "the", "of",
		// Countries
		"peru", "chile", "colombia", "bolivia", "panama", "per", "chi", "col",
		"brasil", "mexico",
		// Generic corporate-structure words
		"empresa", "empresas", "compania", "sociedad", "corporacion",
		"inversiones", "holding", "holdings",
		"banco", "bank", "financial", "financiera", "financiero",
		// Generic sector words
		"minera", "mineras", "minas", "mineros", "mining",
		"energia", "energy", "generacion", "distribucion", "electrica", "electric",
		"construccion", "construcciones", "constructora",
		"servicios", "service", "services", "comercial", "industrial",
		"retail", "internacional", "international", "sucursal",
		// Other generic tokens that cause false positives
		"diagnostico", "instituto", "interconexion", "operadores", "operador",
		"open", "plaza", "mall", "centro", "tienda", "tiendas",
	})
	v.SetDefault("normalization.min_keyword_length", 3)

	// Country mapping defaults
	v.SetDefault("countries", map[string]string{
		"peru":     "PER",
		"chile":    "CHI",
		"colombia": "COL",
		"bolivia":  "BOL",
	})

	// Reference pool defaults
	v.SetDefault("reference.path", "")
	v.SetDefault("reference.name_column", "client_name")
	v.SetDefault("reference.country_column", "country")
	v.SetDefault("reference.id_column", "client_id")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
}

// SaveDefault saves the default configuration to a file
func SaveDefault(configPath string) error {
	v := viper.New()
	setDefaults(v)

	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return v.WriteConfigAs(configPath)
}
