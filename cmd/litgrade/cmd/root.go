// Copyright 2025 Antfly, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/antflydb/litgrade"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Build information, set from main.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "litgrade",
	Short: "Literary text grade-level estimator",
	Long: `Litgrade estimates which school grade (5-9) a literary text suits.

It splits the text into overlapping token windows, classifies each window
with a pretrained TF-IDF model and averages the results.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		litgrade.Version = Version
		litgrade.GitCommit = GitCommit
		litgrade.BuildTime = BuildTime
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./litgrade.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-style", "terminal", "log style (terminal, json, noop)")
	pf.String("models-dir", litgrade.DefaultModelsDir, "directory holding the model artifacts")
	pf.String("feedback-db", litgrade.DefaultFeedbackDB, "SQLite file for reader feedback")
	pf.String("library-dir", litgrade.DefaultLibraryDir, "directory holding the reading library")

	mustBindPFlag("log.level", pf.Lookup("log-level"))
	mustBindPFlag("log.style", pf.Lookup("log-style"))
	mustBindPFlag("models_dir", pf.Lookup("models-dir"))
	mustBindPFlag("feedback_db", pf.Lookup("feedback-db"))
	mustBindPFlag("library_dir", pf.Lookup("library-dir"))

	def := litgrade.DefaultConfig()
	viper.SetDefault("api_url", def.ApiUrl)
	viper.SetDefault("chunk_size", def.ChunkSize)
	viper.SetDefault("chunk_stride", def.ChunkStride)
	viper.SetDefault("auto_transliterate", def.AutoTransliterate)
	viper.SetDefault("max_concurrent_requests", def.MaxConcurrentRequests)
	viper.SetDefault("max_queue_size", def.MaxQueueSize)
	viper.SetDefault("request_timeout", def.RequestTimeout)
	viper.SetDefault("cache_ttl", def.CacheTTL)
	viper.SetDefault("max_upload_mb", def.MaxUploadMb)
}

func initConfig() {
	// A missing .env is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix("LITGRADE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("litgrade")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
			os.Exit(1)
		}
	}
}

func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %q: %v", key, err))
	}
}

// loadConfig assembles the server configuration from flags, env and file.
func loadConfig() (litgrade.Config, error) {
	cfg := litgrade.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
