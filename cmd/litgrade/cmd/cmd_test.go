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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/antflydb/litgrade/lib/aggregation"
	"github.com/antflydb/litgrade/lib/extraction"
	"github.com/antflydb/litgrade/lib/inference"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hikoya.txt")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbfBir bor ekan"), 0o644))

	text, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, "Bir bor ekan", text)

	_, err = readInput(filepath.Join(dir, "hikoya.odt"))
	assert.ErrorIs(t, err, extraction.ErrFormatUnsupported)

	_, err = readInput(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderPrediction(t *testing.T) {
	conf := 0.9
	out := renderPrediction(&inference.Prediction{
		Label:           "7",
		Confidence:      &conf,
		ConfidenceLevel: aggregation.LevelHigh,
		Comment:         aggregation.LevelHigh.Comment(),
		Top3: []aggregation.LabelProb{
			{Label: "7", Probability: 0.9},
			{Label: "6", Probability: 0.1},
		},
		NumTokens:   800,
		NumChunks:   3,
		ChunkSize:   400,
		ChunkStride: 200,
	})
	assert.Contains(t, out, "Recommended grade: 7")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "90.0%")
	assert.Contains(t, out, "800 tokens, 3 chunks")
}

func TestRenderPrediction_Votes(t *testing.T) {
	out := renderPrediction(&inference.Prediction{
		Label: "5",
		Votes: map[string]int{"5": 2, "9": 1},
	})
	assert.Contains(t, out, "2 votes")
	assert.Contains(t, out, "1 votes")
	assert.NotContains(t, out, "Confidence:")
}

func TestLoadConfig_Durations(t *testing.T) {
	viper.Set("request_timeout", "45s")
	viper.Set("cache_ttl", "90s")
	t.Cleanup(func() {
		viper.Set("request_timeout", nil)
		viper.Set("cache_ttl", nil)
	})

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	require.NoError(t, cfg.Validate())
}
