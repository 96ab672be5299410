package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SQLite struct {
		Path string `json:"path" yaml:"path"`
	} `json:"sqlite" yaml:"sqlite"`

	// Region defines the service area. Records with coordinates outside
	// these bounds are rejected at ingestion.
	Region *RegionConfig `json:"region" yaml:"region"`

	// Search configuration for the cached location search engine
	Search *SearchConfig `json:"search" yaml:"search"`

	// RouteCache configuration for the directions cache
	RouteCache *RouteCacheConfig `json:"routeCache" yaml:"routeCache"`

	// Remote configuration for the upstream accommodation source
	Remote *RemoteConfig `json:"remote" yaml:"remote"`

	// Directions configuration for the external directions provider
	Directions *DirectionsConfig `json:"directions" yaml:"directions"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// File enables rotated file output in addition to stdout when non-empty
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"maxSizeMb" yaml:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
}

// RegionConfig defines the geographic bounds of the service area
type RegionConfig struct {
	Name   string  `json:"name" yaml:"name"`
	MinLat float64 `json:"minLat" yaml:"minLat"`
	MinLng float64 `json:"minLng" yaml:"minLng"`
	MaxLat float64 `json:"maxLat" yaml:"maxLat"`
	MaxLng float64 `json:"maxLng" yaml:"maxLng"`
}

// SearchConfig defines search and refresh behavior
type SearchConfig struct {
	// DefaultRadiusKm is used when a search request omits the radius
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`

	// StaleAfter is how old the cached set may get before a read triggers a
	// background refresh. Zero refreshes on every read.
	StaleAfter time.Duration `json:"staleAfter" yaml:"staleAfter"`

	// EvictAfter is the age past which non-bookmarked records are deleted
	// by the maintenance sweep
	EvictAfter time.Duration `json:"evictAfter" yaml:"evictAfter"`
}

// RouteCacheConfig defines the directions cache behavior
type RouteCacheConfig struct {
	// MaxCacheSize is the entry ceiling that triggers capacity eviction
	MaxCacheSize int `json:"maxCacheSize" yaml:"maxCacheSize"`

	// ToleranceDeg is the fuzzy-match tolerance for lookups, in degrees
	ToleranceDeg float64 `json:"toleranceDeg" yaml:"toleranceDeg"`

	// TTL is the lifetime of a cached route entry
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// SweepInterval drives the periodic unpopular-entry sweep
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	// MinHitCount is the hit-count floor for the unpopular sweep
	MinHitCount int `json:"minHitCount" yaml:"minHitCount"`

	// Retention is the minimum age before the unpopular sweep may delete
	Retention time.Duration `json:"retention" yaml:"retention"`
}

// RemoteConfig defines the upstream accommodation source client
type RemoteConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DirectionsConfig defines the external directions provider client
type DirectionsConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	DefaultProfile string        `json:"defaultProfile" yaml:"defaultProfile"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: ROUTECACHE_MAXCACHESIZE -> routeCache.maxCacheSize
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
