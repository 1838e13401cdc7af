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
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/antflydb/antfly-go/libaf/logging"
	"github.com/antflydb/litgrade/lib/chunking"
	"github.com/antflydb/litgrade/lib/inference"
	"github.com/antflydb/litgrade/lib/modelstore"
	"github.com/antflydb/litgrade/pkg/client"
	"github.com/antflydb/litgrade/pkg/client/oapi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var predictCmd = &cobra.Command{
	Use:   "predict [file|-]",
	Short: "Estimate the grade level of a text",
	Long: `Estimate the grade level of a .txt, .docx or .pdf file, or of text read
from stdin.

By default the model in --models-dir is loaded locally. With --server the
text is sent to a running litgrade server instead.

Examples:
  # Grade a document
  litgrade predict hikoya.docx

  # Grade stdin with a smaller window
  cat hikoya.txt | litgrade predict --chunk-size 200 --chunk-stride 100

  # Ask a running server
  litgrade predict hikoya.txt --server http://localhost:11500`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)
	addWindowFlags(predictCmd)
	predictCmd.Flags().String("server", "", "litgrade server URL (default: use the local model)")
	predictCmd.Flags().Bool("json", false, "print the prediction as JSON")
}

func addWindowFlags(c *cobra.Command) {
	c.Flags().Int("chunk-size", 0, "tokens per chunk (default chunk_size from config)")
	c.Flags().Int("chunk-stride", 0, "tokens between chunk starts (default chunk_stride from config)")
	c.Flags().Bool("no-transliterate", false, "do not convert Cyrillic text to Latin")
}

type windowFlags struct {
	window        chunking.WindowParams
	transliterate bool
}

func readWindowFlags(c *cobra.Command) windowFlags {
	size, _ := c.Flags().GetInt("chunk-size")
	stride, _ := c.Flags().GetInt("chunk-stride")
	noTranslit, _ := c.Flags().GetBool("no-transliterate")
	if size == 0 {
		size = viper.GetInt("chunk_size")
	}
	if stride == 0 {
		stride = viper.GetInt("chunk_stride")
	}
	return windowFlags{
		window:        chunking.WindowParams{Size: size, Stride: stride}.WithDefaults(),
		transliterate: viper.GetBool("auto_transliterate") && !noTranslit,
	}
}

// cliLogger logs to stderr at warn level unless configured otherwise, so
// command output stays readable.
func cliLogger() *zap.Logger {
	cfg := logConfig()
	if !viper.IsSet("log.level") {
		cfg.Level = "warn"
	}
	return logging.NewLogger(cfg)
}

func loadModel(logger *zap.Logger) (*modelstore.Model, error) {
	dir := viper.GetString("models_dir")
	model, err := modelstore.Load(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("loading model from %s: %w", dir, err)
	}
	return model, nil
}

func runPredict(cmd *cobra.Command, args []string) error {
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
	server, _ := cmd.Flags().GetString("server")

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	var pred *inference.Prediction
	if server != "" {
		pred, err = predictRemote(ctx, server, text, wf)
	} else {
		pred, err = predictLocal(ctx, text, wf)
	}
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(os.Stdout, pred)
	}
	fmt.Println(renderPrediction(pred))
	return nil
}

func predictLocal(ctx context.Context, text string, wf windowFlags) (*inference.Prediction, error) {
	logger := cliLogger()
	defer func() { _ = logger.Sync() }()

	model, err := loadModel(logger)
	if err != nil {
		return nil, err
	}
	p := inference.NewPredictor(model, wf.transliterate, logger)
	return p.PredictWithOptions(ctx, text, inference.Options{
		Window:        wf.window,
		Transliterate: wf.transliterate,
	})
}

func predictRemote(ctx context.Context, server, text string, wf windowFlags) (*inference.Prediction, error) {
	c, err := client.NewLitgradeClient(server, http.DefaultClient)
	if err != nil {
		return nil, err
	}
	size, stride, translit := wf.window.Size, wf.window.Stride, wf.transliterate
	return c.Predict(ctx, oapi.PredictRequest{
		Text:          text,
		ChunkSize:     &size,
		ChunkStride:   &stride,
		Transliterate: &translit,
	})
}
