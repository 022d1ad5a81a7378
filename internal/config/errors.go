package config

import "errors"

// Sentinel errors for configuration loading. All of them are fatal at startup.

// ErrConfigRead indicates the .env file exists but could not be read.
var ErrConfigRead = errors.New("failed to read configuration file")

// ErrConfigParse indicates the merged settings could not be decoded into Config.
var ErrConfigParse = errors.New("failed to parse configuration")

// ErrMissingAPIKey indicates the selected generation provider has no credential.
var ErrMissingAPIKey = errors.New("generation API key is not set")

// ErrMissingDatabaseURL indicates execution logging is enabled without POSTGRES_URL.
var ErrMissingDatabaseURL = errors.New("POSTGRES_URL is required when execution logging is enabled")

// ErrUnsupportedProvider indicates GENERATION_PROVIDER is neither gemini nor openai.
var ErrUnsupportedProvider = errors.New("unsupported generation provider")

// ErrInvalidTemperature indicates GENERATION_TEMPERATURE is outside [0, 2].
var ErrInvalidTemperature = errors.New("generation temperature must be between 0 and 2")
