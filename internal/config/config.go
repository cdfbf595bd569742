// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON config file and
// environment variables, in increasing order of precedence.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"address"`

	// DatabaseDSN holds the PostgreSQL connection string. When empty the
	// session is kept in SessionFile.
	DatabaseDSN string `json:"database_dsn"`

	// SessionFile is the key-value file the session is persisted to.
	SessionFile string `json:"session_file"`

	// LogLevel is the zap level name.
	LogLevel string `json:"log_level"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// ParseArgs parses args with fs, then layers the JSON config file and the
// environment on top of the flag values.
func ParseArgs(fs *flag.FlagSet, args []string) (*Options, error) {
	options := &Options{}
	fs.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	fs.StringVar(&options.DatabaseDSN, "d", "", "db address")
	fs.StringVar(&options.SessionFile, "s", "pakjobs.json", "session storage file")
	fs.StringVar(&options.LogLevel, "l", "info", "log level")
	fs.StringVar(&options.Config, "config", "config.json", "path to config file")
	fs.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				return nil, fmt.Errorf("error while reading config file: %w", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				return nil, fmt.Errorf("error while parsing config file: %w", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if file := os.Getenv("SESSION_FILE"); file != "" {
		options.SessionFile = file
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}

	return options, nil
}

// Parse parses the process command line and environment. It exits the
// process on invalid configuration.
func Parse() *Options {
	options, err := ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	return options
}
