// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml, then overridden from the
// environment (optionally seeded from a .env file), and validated using
// struct tags.
package config
