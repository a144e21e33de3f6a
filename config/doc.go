// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The station list and the departure direction allow-list are fixed for the
// lifetime of the process.
package config
