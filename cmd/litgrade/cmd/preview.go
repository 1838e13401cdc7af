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

	"github.com/antflydb/litgrade/lib/inference"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file|-]",
	Short: "Count the full chunks a text forms",
	Long: `Count the full token windows a text forms without running the model.

Texts shorter than one window form no chunk and are reported as an error,
so a window size can be checked before grading.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addWindowFlags(previewCmd)
	previewCmd.Flags().Bool("json", false, "print the result as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	text, err := readInput(path)
	if err != nil {
		return err
	}
	wf := readWindowFlags(cmd)
	asJSON, _ := cmd.Flags().GetBool("json")

	pv, err := inference.PreviewText(text, wf.window, wf.transliterate)
	if err != nil && !errors.Is(err, inference.ErrNoChunksFormed) {
		return err
	}
	if asJSON {
		if jerr := printJSON(os.Stdout, pv); jerr != nil {
			return jerr
		}
		return err
	}
	if err != nil && pv.NumTokens > 0 {
		return fmt.Errorf("%w; text has %d tokens, try a chunk size of at most %d", err, pv.NumTokens, pv.NumTokens)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s %d chunks from %d tokens %s\n",
		titleStyle.Render("Preview:"), pv.NumChunks, pv.NumTokens,
		dimStyle.Render(fmt.Sprintf("(size %d, stride %d)", wf.window.Size, wf.window.Stride)))
	return nil
}
