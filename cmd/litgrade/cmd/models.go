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
	"path/filepath"
	"strings"

	"github.com/antflydb/litgrade/lib/modelstore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Describe the model in --models-dir",
	Long: `Load the model artifacts in --models-dir and describe them.

With --write-manifest a manifest.json pinning the SHA256 of every artifact
is written next to them; later loads verify it.`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.Flags().String("write-manifest", "", "write manifest.json with this model name")
	modelsCmd.Flags().Bool("json", false, "print the description as JSON")
}

func runModels(cmd *cobra.Command, args []string) error {
	dir := viper.GetString("models_dir")
	name, _ := cmd.Flags().GetString("write-manifest")
	asJSON, _ := cmd.Flags().GetBool("json")

	if name != "" {
		m, err := modelstore.GenerateManifest(dir, name)
		if err != nil {
			return fmt.Errorf("generating manifest: %w", err)
		}
		path := filepath.Join(dir, modelstore.ManifestFilename)
		if err := m.SaveTo(path); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}

	logger := cliLogger()
	defer func() { _ = logger.Sync() }()
	model, err := loadModel(logger)
	if err != nil {
		return err
	}
	info := model.Info()
	if asJSON {
		return printJSON(os.Stdout, info)
	}

	var b strings.Builder
	title := "Model"
	if info.Name != "" {
		title += " " + info.Name
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	fmt.Fprintf(&b, "Directory:     %s\n", dir)
	fmt.Fprintf(&b, "Classifier:    %s\n", info.Classifier)
	fmt.Fprintf(&b, "Probabilistic: %t\n", info.Probabilistic)
	fmt.Fprintf(&b, "Features:      %d\n", info.Features)
	fmt.Fprintf(&b, "Labels:        %s\n", strings.Join(info.Labels, ", "))
	b.WriteString(dimStyle.Render("Classes:       " + strings.Join(info.Classes, ", ")))
	fmt.Println(boxStyle.Render(b.String()))
	return nil
}
