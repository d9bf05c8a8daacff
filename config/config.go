// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	migrateOnly      = pflag.Bool("migrate-only", false, "Runs database migrations and exits")
	validLogLevels   = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers   = []string{"sqlite", "postgres"}
	validCacheStores = []string{"memory", "redis"}
)

// MigrateOnly reports whether the server should exit after migrating.
func MigrateOnly() bool {
	return *migrateOnly
}

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")

	v.BindEnv("database.driver", "database_driver")
	v.BindEnv("database.dsn", "database_dsn")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.access_ttl", "jwt_access_ttl")
	v.BindEnv("jwt.refresh_ttl", "jwt_refresh_ttl")

	v.BindEnv("signup.code_max_age", "signup_code_max_age")
	v.BindEnv("signup.secret", "signup_secret")

	v.BindEnv("mail.enabled", "mail_enabled")
	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender", "mail_sender_address")
	v.BindEnv("mail.password", "mail_password")

	v.BindEnv("cache.store", "cache_store")
	v.BindEnv("cache.redis_addr", "cache_redis_addr")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "database.db")

	v.SetDefault("jwt.access_ttl", "1h")
	v.SetDefault("jwt.refresh_ttl", "720h")

	v.SetDefault("signup.code_max_age", "24h")

	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.port", 587)

	v.SetDefault("cache.store", "memory")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDBDrivers, v.GetString("database.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("database.dsn") == "" {
		return errors.New("database dsn can't be empty")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetDuration("jwt.access_ttl") <= 0 || v.GetDuration("jwt.refresh_ttl") <= 0 {
		return errors.New("jwt token lifetimes must be bigger than 0")
	}

	if v.GetDuration("signup.code_max_age") <= 0 {
		return errors.New("signup.code_max_age must be bigger than 0")
	}

	if v.GetString("signup.secret") == "" {
		fmt.Println("[WARNING]: signup.secret is not set. Confirmation codes will be keyed with the JWT secret")
	}

	if v.GetBool("mail.enabled") {
		if v.GetString("mail.host") == "" {
			return errors.New("mail host can't be empty")
		}
		if v.GetString("mail.sender") == "" {
			return errors.New("mail sender address can't be empty")
		}
		if v.GetString("mail.password") == "" {
			return errors.New("mail password can't be empty")
		}
	} else {
		fmt.Println("[WARNING]: Mail delivery is disabled. Confirmation codes will only be written to the log")
	}

	if !slices.Contains(validCacheStores, v.GetString("cache.store")) {
		return errors.New("invalid cache store provided")
	}

	if v.GetString("cache.store") == "redis" && v.GetString("cache.redis_addr") == "" {
		return errors.New("redis address can't be empty")
	}

	return nil
}
