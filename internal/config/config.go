package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Logger LoggerConfig `mapstructure:"logger"`
	Auth   AuthConfig   `mapstructure:"auth"`
	AI     AIConfig     `mapstructure:"ai"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type RedisConfig struct {
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	QuizTTL  time.Duration `mapstructure:"quiz_ttl"`
}

type LoggerConfig struct {
	Env   string `mapstructure:"env"`
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// AIConfig holds provider credentials and orchestration limits.
// A provider whose credential is empty is treated as unconfigured.
type AIConfig struct {
	// Provider is "auto" or the name of a provider to try first.
	Provider           string        `mapstructure:"provider"`
	Timeout            time.Duration `mapstructure:"timeout"`
	MaxQuestions       int           `mapstructure:"max_questions"`
	ExplainConcurrency int           `mapstructure:"explain_concurrency"`

	OpenAI      OpenAIConfig      `mapstructure:"openai"`
	Gemini      GeminiConfig      `mapstructure:"gemini"`
	HuggingFace HuggingFaceConfig `mapstructure:"huggingface"`
	Anthropic   AnthropicConfig   `mapstructure:"anthropic"`
	Ollama      OllamaConfig      `mapstructure:"ollama"`
}

type OpenAIConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	BaseURL   string `mapstructure:"base_url"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type HuggingFaceConfig struct {
	APIKey  string   `mapstructure:"api_key"`
	BaseURL string   `mapstructure:"base_url"`
	Models  []string `mapstructure:"models"`
}

type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

type OllamaConfig struct {
	ServerURL string `mapstructure:"server_url"`
	Model     string `mapstructure:"model"`
}

// DefaultHuggingFaceModels is the order in which Hugging Face models are tried.
var DefaultHuggingFaceModels = []string{
	"mistralai/Mistral-7B-Instruct-v0.2",
	"meta-llama/Meta-Llama-3-8B-Instruct",
	"google/gemma-7b-it",
	"HuggingFaceH4/zephyr-7b-beta",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "120s")

	v.SetDefault("db.port", 1521)

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.quiz_ttl", "10m")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("ai.provider", "auto")
	v.SetDefault("ai.timeout", "30s")
	v.SetDefault("ai.max_questions", 50)
	v.SetDefault("ai.explain_concurrency", 4)
	v.SetDefault("ai.openai.model", "gpt-4o-mini")
	v.SetDefault("ai.openai.max_tokens", 1200)
	v.SetDefault("ai.gemini.model", "gemini-2.5-pro")
	v.SetDefault("ai.huggingface.models", DefaultHuggingFaceModels)
	v.SetDefault("ai.anthropic.model", "claude-haiku-4-5")
	v.SetDefault("ai.anthropic.max_tokens", 1200)
	v.SetDefault("ai.ollama.model", "qwen3:0.6b")
}

// bindEnv maps the flat environment names used in deployments onto config keys.
func bindEnv(v *viper.Viper) {
	bindings := map[string]string{
		"server.port":            "SERVER_PORT",
		"db.host":                "DB_HOST",
		"db.port":                "DB_PORT",
		"db.user":                "DB_USER",
		"db.password":            "DB_PASSWORD",
		"db.name":                "DB_NAME",
		"redis.address":          "REDIS_ADDRESS",
		"redis.password":         "REDIS_PASSWORD",
		"redis.db":               "REDIS_DB",
		"logger.env":             "APP_ENV",
		"logger.level":           "LOG_LEVEL",
		"auth.jwt_secret":        "JWT_SECRET",
		"ai.provider":            "AI_PROVIDER",
		"ai.timeout":             "AI_TIMEOUT",
		"ai.openai.api_key":      "OPENAI_API_KEY",
		"ai.openai.base_url":     "OPENAI_BASE_URL",
		"ai.gemini.api_key":      "GEMINI_API_KEY",
		"ai.huggingface.api_key": "HF_API_KEY",
		"ai.anthropic.api_key":   "ANTHROPIC_API_KEY",
		"ai.ollama.server_url":   "OLLAMA_SERVER_URL",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}
}

// LoadConfig reads .env, an optional config.yaml and the environment, in
// increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	if len(cfg.AI.HuggingFace.Models) == 0 {
		cfg.AI.HuggingFace.Models = DefaultHuggingFaceModels
	}

	return &cfg, nil
}

// GetDSN returns the go-ora connection URL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	)
}
