// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// EnvConfigPath names the config file when no path is given on the command line.
const EnvConfigPath = "CONFIG_PATH"

// DBCreds holds the Postgres connection settings.
type DBCreds struct {
	Host      string `yaml:"host"`
	Port      string `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	Database  string `yaml:"database"`
	LoadTable string `yaml:"load_table"`
}

// Batch controls stored line processing.
type Batch struct {
	Workers     int    `yaml:"workers"`
	BatchSize   int    `yaml:"batch_size"`
	SourceTable string `yaml:"source_table"`
	ResultTable string `yaml:"result_table"`
}

// Server controls the HTTP API.
type Server struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"`
}

// Normalizer controls line reassembly.
type Normalizer struct {
	Capacity int `yaml:"capacity"`
}

// Log controls the logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Config struct {
	DBCreds    DBCreds    `yaml:"db_creds"`
	Batch      Batch      `yaml:"batch"`
	Server     Server     `yaml:"server"`
	Normalizer Normalizer `yaml:"normalizer"`
	Log        Log        `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DBCreds: DBCreds{
			Host:      "localhost",
			Port:      "5432",
			Username:  "postgres",
			Database:  "deliveryline",
			LoadTable: "street_lines_load",
		},
		Batch: Batch{
			Workers:     10,
			BatchSize:   1000,
			SourceTable: "street_lines",
			ResultTable: "parsed_lines",
		},
		Server: Server{
			Port: "8080",
			Mode: "release",
		},
		Normalizer: Normalizer{Capacity: 256},
		Log:        Log{Level: "info"},
	}
}

// LoadConfig loads the configuration from a YAML file. Values missing from
// the file keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Resolve loads path, or the file named by CONFIG_PATH when path is empty,
// or the defaults when neither is set.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadConfig(path)
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Batch.Workers <= 0 {
		errs = append(errs, fmt.Errorf("batch.workers must be positive, got %d", c.Batch.Workers))
	}
	if c.Batch.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("batch.batch_size must be positive, got %d", c.Batch.BatchSize))
	}
	if c.Batch.SourceTable == "" || c.Batch.ResultTable == "" {
		errs = append(errs, errors.New("batch.source_table and batch.result_table are required"))
	}
	if c.Normalizer.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("normalizer.capacity must be positive, got %d", c.Normalizer.Capacity))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
