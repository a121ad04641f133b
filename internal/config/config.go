package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"healthai/internal/core"
	"healthai/internal/llm"
)

// Generator strategies.
const (
	GeneratorSimulated = "simulated"
	GeneratorModel     = "model"
)

// LLM providers for the model generator.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config is the whole runtime configuration.  Every key can be set as an
// environment variable of the same name in upper case, or in the YAML file
// named by CONFIG_FILE.
type Config struct {
	Port      string `mapstructure:"port"`
	Generator string `mapstructure:"generator"`

	LLMProvider   string `mapstructure:"llm_provider"`
	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`
	LLMModel      string `mapstructure:"llm_model"`
	LLMEchoPrompt bool   `mapstructure:"llm_echo_prompt"`
	GoogleAPIKey  string `mapstructure:"google_api_key"`
	GeminiModel   string `mapstructure:"gemini_model"`
	GeminiBaseURL string `mapstructure:"gemini_base_url"`

	MaxInputTokens     int     `mapstructure:"max_input_tokens"`
	MaxLengthChat      int     `mapstructure:"max_length_chat"`
	MaxLengthSymptoms  int     `mapstructure:"max_length_symptoms"`
	MaxLengthTreatment int     `mapstructure:"max_length_treatment"`
	Temperature        float32 `mapstructure:"temperature"`

	SimulatedDelay time.Duration `mapstructure:"simulated_delay"`

	DatabaseURL  string `mapstructure:"database_url"`
	HistoryLimit int    `mapstructure:"history_limit"`
}

// MaxLength returns the per-mode token budgets.
func (c *Config) MaxLength() map[core.Mode]int {
	return map[core.Mode]int{
		core.ModeChat:            c.MaxLengthChat,
		core.ModeSymptomAnalysis: c.MaxLengthSymptoms,
		core.ModeTreatmentPlan:   c.MaxLengthTreatment,
	}
}

func setDefaults(v *viper.Viper) {
	defaultMaxLength := core.DefaultMaxLength()
	v.SetDefault("port", "8080")
	v.SetDefault("generator", GeneratorSimulated)
	v.SetDefault("llm_provider", ProviderOpenAI)
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_base_url", "")
	v.SetDefault("llm_model", llm.DefaultModel)
	v.SetDefault("llm_echo_prompt", false)
	v.SetDefault("google_api_key", "")
	v.SetDefault("gemini_model", llm.DefaultGeminiModel)
	v.SetDefault("gemini_base_url", "")
	v.SetDefault("max_input_tokens", core.DefaultMaxInputTokens)
	v.SetDefault("max_length_chat", defaultMaxLength[core.ModeChat])
	v.SetDefault("max_length_symptoms", defaultMaxLength[core.ModeSymptomAnalysis])
	v.SetDefault("max_length_treatment", defaultMaxLength[core.ModeTreatmentPlan])
	v.SetDefault("temperature", core.DefaultTemperature)
	v.SetDefault("simulated_delay", core.DefaultSimulatedDelay)
	v.SetDefault("database_url", "")
	v.SetDefault("history_limit", 20)
}

// Load reads .env (if present), the environment and the optional config
// file, in increasing order of precedence: file, then environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown strategy or provider names.
func (c *Config) Validate() error {
	switch c.Generator {
	case GeneratorSimulated, GeneratorModel:
	default:
		return fmt.Errorf("GENERATOR must be %q or %q, got %q", GeneratorSimulated, GeneratorModel, c.Generator)
	}
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.LLMProvider)
	}
	return nil
}
