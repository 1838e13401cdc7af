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

package aggregation

// Level is a coarse confidence band.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Band thresholds, inclusive.
const (
	HighThreshold   = 0.85
	MediumThreshold = 0.70
)

// ConfidenceLevel bands a probability: high at or above 0.85, medium at or
// above 0.70, low otherwise.
func ConfidenceLevel(p float64) Level {
	switch {
	case p >= HighThreshold:
		return LevelHigh
	case p >= MediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Comment returns the reader-facing advice for a level.
func (l Level) Comment() string {
	switch l {
	case LevelHigh:
		return "High confidence."
	case LevelMedium:
		return "Medium confidence."
	default:
		return "Low confidence: provide more text or verify the result."
	}
}
