package config

import (
	"os"
	"testing"
	"time"

	"forecastapi.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	os.Clearenv()
	t.Setenv("WEATHER_API_KEY", "test-weather-key")
	t.Setenv("GEOCODING_API_KEY", "test-geocoding-key")
}

func TestLoadConfig(t *testing.T) {
	t.Run("RequiredFieldsMissing", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "required key WEATHER_API_KEY missing")
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("GeocodingKeyMissing", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("WEATHER_API_KEY", "test-weather-key")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "required key GEOCODING_API_KEY missing")
	})

	t.Run("DefaultValues", func(t *testing.T) {
		setRequiredEnv(t)

		config, err := LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "https://api.weatherapi.com/v1", config.Weather.BaseURL)
		assert.Equal(t, CacheTypeMemory, config.Cache.Type)
		assert.Equal(t, 30, config.Cache.TTLMinutes)
		assert.Equal(t, 30*time.Minute, config.Cache.TTL())
		assert.Equal(t, 1024, config.Cache.MemorySize)
		assert.Equal(t, "localhost:6379", config.Cache.Redis.Addr)
		assert.Equal(t, "postgres", config.Cache.Database.Driver)
		assert.Equal(t, "forecastapi", config.Cache.Database.Name)
		assert.Equal(t, "info", config.Logging.Level)
		assert.Empty(t, config.Logging.FilePath)
	})

	t.Run("CustomValues", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("WEATHER_API_BASE_URL", "http://localhost:9999/v1")
		t.Setenv("CACHE_TYPE", "redis")
		t.Setenv("FORECAST_CACHE_TTL_MINUTES", "15")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("FORECAST_LOG_FILE_PATH", "logs/forecast.log")

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "http://localhost:9999/v1", config.Weather.BaseURL)
		assert.Equal(t, CacheTypeRedis, config.Cache.Type)
		assert.Equal(t, 15*time.Minute, config.Cache.TTL())
		assert.Equal(t, "redis:6379", config.Cache.Redis.Addr)
		assert.Equal(t, 2, config.Cache.Redis.DB)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, "logs/forecast.log", config.Logging.FilePath)
	})

	t.Run("InvalidCacheType", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CACHE_TYPE", "memcached")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "CACHE_TYPE must be one of")
	})

	t.Run("InvalidBaseURL", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("WEATHER_API_BASE_URL", "api.weatherapi.com/v1")

		_, err := LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "WEATHER_API_BASE_URL must start with")
	})

	t.Run("GetDSN", func(t *testing.T) {
		dbConfig := DatabaseConfig{
			Host:     "test-host",
			Port:     5432,
			User:     "test-user",
			Password: "test-password",
			Name:     "test-db",
			SSLMode:  "require",
		}

		expectedDSN := "host=test-host port=5432 user=test-user password=test-password dbname=test-db sslmode=require"
		assert.Equal(t, expectedDSN, dbConfig.GetDSN())
	})
}

func TestCacheConfig_Validate(t *testing.T) {
	validRedis := RedisConfig{Addr: "localhost:6379", DialTimeout: 5, ReadTimeout: 3, WriteTimeout: 3}

	tests := []struct {
		name    string
		config  CacheConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:   "MemoryDefaults",
			config: CacheConfig{Type: CacheTypeMemory, TTLMinutes: 30, MemorySize: 10},
		},
		{
			name:    "TTLTooSmall",
			config:  CacheConfig{Type: CacheTypeMemory, TTLMinutes: 0, MemorySize: 10},
			wantErr: true,
			errMsg:  "FORECAST_CACHE_TTL_MINUTES",
		},
		{
			name:    "TTLTooLarge",
			config:  CacheConfig{Type: CacheTypeMemory, TTLMinutes: 1441, MemorySize: 10},
			wantErr: true,
			errMsg:  "FORECAST_CACHE_TTL_MINUTES",
		},
		{
			name:    "MemorySizeZero",
			config:  CacheConfig{Type: CacheTypeMemory, TTLMinutes: 30},
			wantErr: true,
			errMsg:  "CACHE_MEMORY_SIZE",
		},
		{
			name:   "ValidRedis",
			config: CacheConfig{Type: CacheTypeRedis, TTLMinutes: 30, Redis: validRedis},
		},
		{
			name:    "RedisDBOutOfRange",
			config:  CacheConfig{Type: CacheTypeRedis, TTLMinutes: 30, Redis: RedisConfig{Addr: "x:1", DB: 16, DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}},
			wantErr: true,
			errMsg:  "REDIS_DB",
		},
		{
			name:   "ValidSQLite",
			config: CacheConfig{Type: CacheTypeDatabase, TTLMinutes: 30, Database: DatabaseConfig{Driver: "sqlite", SQLitePath: "cache.db"}},
		},
		{
			name:    "UnknownDriver",
			config:  CacheConfig{Type: CacheTypeDatabase, TTLMinutes: 30, Database: DatabaseConfig{Driver: "mysql"}},
			wantErr: true,
			errMsg:  "DB_DRIVER",
		},
		{
			name: "PostgresBadSSLMode",
			config: CacheConfig{Type: CacheTypeDatabase, TTLMinutes: 30, Database: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: 5432, User: "u", Name: "n", SSLMode: "sometimes",
			}},
			wantErr: true,
			errMsg:  "DB_SSL_MODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCacheTypeFromString(t *testing.T) {
	assert.Equal(t, CacheTypeMemory, CacheTypeFromString("memory"))
	assert.Equal(t, CacheTypeRedis, CacheTypeFromString("redis"))
	assert.Equal(t, CacheTypeDatabase, CacheTypeFromString("database"))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("disk"))
	assert.Equal(t, "database", CacheTypeDatabase.String())
}
