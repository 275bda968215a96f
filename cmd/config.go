package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-vector/pkg/app/bench"
)

// LoadWorkloadConfig loads a workload request using Viper, layering defaults,
// an optional yaml file, and environment variables.
func LoadWorkloadConfig(path string) (*bench.Request, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Set defaults
	v.SetDefault("appends", 1000)
	v.SetDefault("inserts", 0)
	v.SetDefault("erases", 0)
	v.SetDefault("payload_size", 64)
	v.SetDefault("seed", 1)
	v.SetDefault("reserve", 0)
	v.SetDefault("max_capacity", 0)

	// Allow environment variables
	v.SetEnvPrefix("GOVECTOR")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading workload config: %w", err)
		}
	} else {
		v.SetConfigName("go-vector")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.go-vector")
		// Config file not found is OK, we'll use defaults
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading workload config: %w", err)
			}
		}
	}

	var req bench.Request
	if err := v.Unmarshal(&req); err != nil {
		return nil, fmt.Errorf("error unmarshaling workload config: %w", err)
	}
	return &req, nil
}
