package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix of every environment variable read by Load.
const envPrefix = "BLOCKED_"

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// CacheSize is the number of per-address decisions kept in the LRU cache.
	CacheSize uint `koanf:"cache_size" validate:"max=10000000"`

	// DisableCache turns decision caching off regardless of CacheSize.
	DisableCache bool `koanf:"disable_cache"`

	// BloomFPRate is the target false-positive rate of the Bloom prefilter.
	BloomFPRate float64 `koanf:"bloom_fp_rate" validate:"gte=1e-9,lt=1"`

	// Canonicalize lowercases and punycode-encodes addresses before matching.
	Canonicalize bool `koanf:"canonicalize"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// HashFiles lists newline-delimited digest files; "-" reads stdin.
	HashFiles []string `koanf:"hash_files" validate:"dive,list_path"`
}

// DEFAULT_APP_CONFIG holds the defaults applied before the environment.
var DEFAULT_APP_CONFIG = AppConfig{
	CacheSize:    1000,
	DisableCache: false,
	BloomFPRate:  0.01,
	Canonicalize: false,
	Env:          "prod",
	LogLevel:     "info",
	HashFiles:    nil,
}

// validListPath accepts "-" or a path that does not name a directory.
func validListPath(fl validator.FieldLevel) bool {
	p := strings.TrimSpace(fl.Field().String())
	if p == "-" {
		return true
	}
	return p != "" && !strings.HasSuffix(p, "/") && !strings.ContainsRune(p, 0)
}

// listKeys are the keys whose values are split on spaces or commas.
var listKeys = map[string]bool{"hash_files": true}

// envLoader loads BLOCKED_* variables, lowercasing keys and splitting list
// values. Replaced in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			value = strings.TrimSpace(value)

			// empty variables are ignored so defaults survive
			if value == "" {
				return "", nil
			}
			if listKeys[key] {
				return key, strings.FieldsFunc(value, func(r rune) bool {
					return r == ' ' || r == ','
				})
			}
			return key, value
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG through the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers the "list_path" tag.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("list_path", validListPath)
}

// Load reads defaults and the environment and returns a validated AppConfig.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *AppConfig) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := registerValidation(validate); err != nil {
		return fmt.Errorf("error registering validation: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
