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

// Command litgrade estimates the school grade level of literary texts.
//
// Usage:
//
//	litgrade run                     # Start the server
//	litgrade predict story.docx      # Grade a document with the local model
//	litgrade preview story.txt       # Count the chunks a text forms
//	litgrade models                  # Describe the loaded model
//	litgrade feedback export         # Write feedback as CSV
package main

import "github.com/antflydb/litgrade/cmd/litgrade/cmd"

// Set by GoReleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.GitCommit = commit
	cmd.BuildTime = date
	cmd.Execute()
}
