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

package modelstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/antflydb/litgrade/lib/classification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testModelDir = "../../testdata/model"

// copyModel copies the test model into a temporary directory.
func copyModel(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range ArtifactFiles() {
		data, err := os.ReadFile(filepath.Join(testModelDir, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	model, err := Load(testModelDir, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.True(t, model.Available())
	assert.True(t, model.Probabilistic())
	assert.Equal(t, []string{"5", "6", "7", "8", "9"}, model.Labels)
	assert.Equal(t, 12, model.Vectorizer.Dim())
	assert.Nil(t, model.Manifest)

	info := model.Info()
	assert.True(t, info.Available)
	assert.Equal(t, classification.KindLogisticRegression, info.Classifier)
	assert.Equal(t, 12, info.Features)
}

func TestLoad_MissingArtifacts(t *testing.T) {
	for _, missing := range ArtifactFiles() {
		t.Run(missing, func(t *testing.T) {
			dir := copyModel(t)
			require.NoError(t, os.Remove(filepath.Join(dir, missing)))

			model, err := Load(dir, nil)
			require.ErrorIs(t, err, classification.ErrModelUnavailable)
			assert.Nil(t, model)
			assert.False(t, model.Available())
		})
	}
}

func TestLoad_NoDirectory(t *testing.T) {
	_, err := Load("", nil)
	require.ErrorIs(t, err, classification.ErrModelUnavailable)

	_, err = Load(filepath.Join(t.TempDir(), "absent"), nil)
	require.ErrorIs(t, err, classification.ErrModelUnavailable)
}

func TestLoad_CorruptArtifact(t *testing.T) {
	dir := copyModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ClassifierFilename), []byte("{not json"), 0o644))

	_, err := Load(dir, nil)
	require.ErrorIs(t, err, classification.ErrModelUnavailable)
}

func TestLoad_LabelMismatch(t *testing.T) {
	dir := copyModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, LabelsFilename), []byte(`["5","6"]`), 0o644))

	_, err := Load(dir, nil)
	require.ErrorIs(t, err, classification.ErrModelUnavailable)
	assert.Contains(t, err.Error(), "2 labels for 5")
}

func TestManifest_RoundTripAndVerify(t *testing.T) {
	dir := copyModel(t)

	m, err := GenerateManifest(dir, "uz-literature-tfidf")
	require.NoError(t, err)
	require.Len(t, m.Files, 3)
	require.NoError(t, m.SaveTo(filepath.Join(dir, ManifestFilename)))

	model, err := Load(dir, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NotNil(t, model.Manifest)
	assert.Equal(t, "uz-literature-tfidf", model.Info().Name)

	// Any change to an artifact after the manifest was written is rejected.
	require.NoError(t, os.WriteFile(filepath.Join(dir, LabelsFilename), []byte(`["V","VI","VII","VIII","IX"]`), 0o644))
	_, err = Load(dir, nil)
	require.ErrorIs(t, err, classification.ErrModelUnavailable)
	assert.Contains(t, err.Error(), "digest mismatch")
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad json":       `{`,
		"schema version": `{"schemaVersion":9,"name":"m","files":[{"name":"a","digest":"sha256:00"}]}`,
		"no name":        `{"schemaVersion":1,"files":[{"name":"a","digest":"sha256:00"}]}`,
		"no files":       `{"schemaVersion":1,"name":"m","files":[]}`,
		"bad digest":     `{"schemaVersion":1,"name":"m","files":[{"name":"a","digest":"md5:00"}]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseManifest([]byte(data))
			require.Error(t, err)
		})
	}
}

func TestNew_FeatureMismatch(t *testing.T) {
	vec, err := classification.NewTfidfVectorizer(classification.TfidfConfig{
		Vocabulary: map[string]int{"a": 0, "b": 1, "c": 2},
		IDF:        []float64{1, 1, 1},
	})
	require.NoError(t, err)
	clf, err := classification.NewLogisticRegression(classification.LinearConfig{
		Classes:   []string{"5", "6"},
		Coef:      [][]float64{{1, 1}},
		Intercept: []float64{0},
	})
	require.NoError(t, err)

	_, err = New(vec, clf, []string{"5", "6"})
	require.ErrorIs(t, err, classification.ErrModelUnavailable)

	_, err = New(nil, clf, []string{"5", "6"})
	require.ErrorIs(t, err, classification.ErrModelUnavailable)
}

func TestModel_LabelFor(t *testing.T) {
	dir := copyModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, LabelsFilename), []byte(`["V","VI","VII","VIII","IX"]`), 0o644))
	model, err := Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, "VII", model.LabelFor("7"))
	assert.Equal(t, "unknown", model.LabelFor("unknown"))
}
