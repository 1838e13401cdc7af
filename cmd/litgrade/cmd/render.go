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
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/antflydb/litgrade/lib/aggregation"
	"github.com/antflydb/litgrade/lib/extraction"
	"github.com/antflydb/litgrade/lib/inference"
	"github.com/bytedance/sonic"
)

var (
	colorHigh   = lipgloss.Color("#22C55E")
	colorMedium = lipgloss.Color("#F97316")
	colorLow    = lipgloss.Color("#F43F5E")
	colorDim    = lipgloss.Color("#94A3B8")

	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

const barWidth = 30

// readInput returns the text of path, or of stdin when path is empty or "-".
// Documents are converted to text by extension.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return extraction.Extract(data, extraction.FormatText)
	}
	format, err := extraction.FormatFromFilename(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return extraction.Extract(data, format)
}

func printJSON(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func levelStyle(l aggregation.Level) lipgloss.Style {
	switch l {
	case aggregation.LevelHigh:
		return lipgloss.NewStyle().Foreground(colorHigh).Bold(true)
	case aggregation.LevelMedium:
		return lipgloss.NewStyle().Foreground(colorMedium).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorLow).Bold(true)
	}
}

func bar(p float64) string {
	n := int(p*barWidth + 0.5)
	return strings.Repeat("█", n) + dimStyle.Render(strings.Repeat("░", barWidth-n))
}

// renderPrediction formats a prediction for the terminal.
func renderPrediction(p *inference.Prediction) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recommended grade: " + p.Label))
	b.WriteString("\n")
	if p.HasConfidence() {
		fmt.Fprintf(&b, "Confidence: %s %s\n",
			levelStyle(p.ConfidenceLevel).Render(string(p.ConfidenceLevel)),
			dimStyle.Render(fmt.Sprintf("(%.1f%%)", *p.Confidence*100)))
	}
	if p.Comment != "" {
		b.WriteString(p.Comment + "\n")
	}
	b.WriteString("\n")
	for _, lp := range p.Top3 {
		fmt.Fprintf(&b, "%-6s %s %5.1f%%\n", lp.Label, bar(lp.Probability), lp.Probability*100)
	}
	for _, label := range slices.Sorted(maps.Keys(p.Votes)) {
		fmt.Fprintf(&b, "%-6s %d votes\n", label, p.Votes[label])
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d tokens, %d chunks (size %d, stride %d)",
		p.NumTokens, p.NumChunks, p.ChunkSize, p.ChunkStride)))
	if p.Transliterated {
		b.WriteString(dimStyle.Render(", transliterated from Cyrillic"))
	}
	return boxStyle.Render(b.String())
}
