// Package config handles configuration management for chatml.
// It layers the embedded defaults, the user's TOML file and CHATML_
// environment variables with koanf, then decodes the result into Config.
package config
