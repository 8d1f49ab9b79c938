// Package config provides configuration management for mcpack using Viper.
//
// Configuration is read from config.yaml in the XDG config directory,
// overridable through MCPACK_* environment variables. All settings have
// working defaults; the file is optional.
package config
