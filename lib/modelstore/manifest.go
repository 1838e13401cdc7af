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
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// ManifestFilename is the optional manifest stored next to the artifacts.
const ManifestFilename = "manifest.json"

// CurrentSchemaVersion is the manifest format version written by this package.
const CurrentSchemaVersion = 1

// ModelFile is a single artifact listed in the manifest.
type ModelFile struct {
	// Name is the filename, e.g. "vectorizer.json".
	Name string `json:"name"`
	// Digest is the SHA256 of the file as "sha256:<hex>".
	Digest string `json:"digest"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
}

// Manifest describes a model directory and pins its artifacts by digest.
type Manifest struct {
	SchemaVersion int         `json:"schemaVersion"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Files         []ModelFile `json:"files"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Validate checks that the manifest is well-formed.
func (m *Manifest) Validate() error {
	if m.SchemaVersion < 1 || m.SchemaVersion > CurrentSchemaVersion {
		return fmt.Errorf("unsupported schema version: %d (expected 1-%d)", m.SchemaVersion, CurrentSchemaVersion)
	}
	if m.Name == "" {
		return fmt.Errorf("manifest missing required field: name")
	}
	if len(m.Files) == 0 {
		return fmt.Errorf("manifest must have at least one file")
	}
	for _, f := range m.Files {
		if f.Name == "" {
			return fmt.Errorf("file entry missing name")
		}
		if !strings.HasPrefix(f.Digest, "sha256:") {
			return fmt.Errorf("file %s has invalid digest format (expected sha256:...)", f.Name)
		}
	}
	return nil
}

// Verify recomputes the digest of every listed file under dir.
func (m *Manifest) Verify(dir string) error {
	for _, f := range m.Files {
		digest, err := ComputeFileDigest(filepath.Join(dir, f.Name))
		if err != nil {
			return fmt.Errorf("verifying %s: %w", f.Name, err)
		}
		if digest != f.Digest {
			return fmt.Errorf("digest mismatch for %s: manifest %s, file %s", f.Name, f.Digest, digest)
		}
	}
	return nil
}

// ParseManifest parses and validates a JSON manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := sonic.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifestFromDir reads dir/manifest.json.
func LoadManifestFromDir(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFilename))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return ParseManifest(data)
}

// SaveTo writes the manifest as indented JSON.
func (m *Manifest) SaveTo(path string) error {
	data, err := sonic.ConfigStd.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ComputeFileDigest computes the SHA256 digest of a file in "sha256:..." format.
func ComputeFileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// GenerateManifest builds a manifest covering the three artifacts in dir.
func GenerateManifest(dir, name string) (*Manifest, error) {
	m := &Manifest{
		SchemaVersion: CurrentSchemaVersion,
		Name:          name,
		CreatedAt:     time.Now().UTC(),
	}
	for _, fname := range ArtifactFiles() {
		path := filepath.Join(dir, fname)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", fname, err)
		}
		digest, err := ComputeFileDigest(path)
		if err != nil {
			return nil, err
		}
		m.Files = append(m.Files, ModelFile{Name: fname, Digest: digest, Size: info.Size()})
	}
	return m, nil
}

// ArtifactFiles lists the files every model directory must contain.
func ArtifactFiles() []string {
	return slices.Clone(artifactFiles)
}

var artifactFiles = []string{VectorizerFilename, ClassifierFilename, LabelsFilename}
