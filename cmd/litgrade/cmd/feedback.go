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
	"fmt"
	"os"
	"time"

	"github.com/antflydb/litgrade/lib/feedback"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Inspect reader feedback",
}

var feedbackExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export feedback as CSV",
	Long: `Write every feedback entry in --feedback-db as CSV, oldest first.

Examples:
  litgrade feedback export > feedback.csv
  litgrade feedback export --out feedback.csv`,
	Args: cobra.NoArgs,
	RunE: runFeedbackExport,
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the newest feedback entries",
	Args:  cobra.NoArgs,
	RunE:  runFeedbackList,
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.AddCommand(feedbackExportCmd)
	feedbackCmd.AddCommand(feedbackListCmd)

	feedbackExportCmd.Flags().StringP("out", "o", "", "output file (default: stdout)")
	feedbackListCmd.Flags().Int("limit", 20, "number of entries to show")
}

func openFeedback() (*feedback.Store, error) {
	path := viper.GetString("feedback_db")
	if path == "" {
		return nil, fmt.Errorf("no feedback database configured")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("feedback database %s: %w", path, err)
	}
	return feedback.Open(path, cliLogger())
}

func runFeedbackExport(cmd *cobra.Command, args []string) error {
	store, err := openFeedback()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	w := os.Stdout
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	n, err := store.ExportCSV(cmd.Context(), w)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported %d entries\n", n)
	return nil
}

func runFeedbackList(cmd *cobra.Command, args []string) error {
	store, err := openFeedback()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(dimStyle.Render("No feedback yet."))
		return nil
	}
	for _, e := range entries {
		meta := e.CreatedAt.Local().Format(time.DateTime)
		if e.Label != "" {
			meta += " grade " + e.Label
		}
		fmt.Println(dimStyle.Render(meta))
		fmt.Println(e.Message)
		fmt.Println()
	}
	return nil
}
