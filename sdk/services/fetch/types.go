// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package fetch

import "fmt"

// Remote object layout of the diva360 bucket.
const (
	RemotePrefix = "processed_data"
	ArchiveName  = "frames_1.tar.gz"
)

// MetadataFiles are downloaded as-is into every scene directory.
var MetadataFiles = []string{
	"transforms_test.json",
	"transforms_train.json",
	"transforms_val.json",
}

// Step names the stage of the per-scene sequence that failed.
type Step string

const (
	StepMkdir    Step = "mkdir"
	StepArchive  Step = "archive-download"
	StepExtract  Step = "extract"
	StepCleanup  Step = "archive-cleanup"
	StepMetadata Step = "metadata-download"
)

// Request describes one batch run.
type Request struct {
	// BasePath is the local root under which scene directories are created.
	BasePath string
	// Scenes is the ordered identifier list; processed strictly in order.
	Scenes []string
}

// StepError reports which scene and step aborted the batch.
type StepError struct {
	Scene string
	Step  Step
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("scene %s: step %s: %v", e.Scene, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
