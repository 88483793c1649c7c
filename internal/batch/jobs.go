// SPDX-License-Identifier: MIT

// Package batch runs many independent computations from a YAML job file.
//
//	jobs:
//	  - name: q1
//	    kind: roots
//	    coefficients: [1, -3, 2]
//	  - name: m1
//	    kind: determinant
//	    matrix: [[1, 2], [3, 4]]
//	  - name: m2
//	    kind: inverse
//	    matrix: [[4, 7], [2, 6]]
//	  - name: c1
//	    kind: complex
//	    op: mul
//	    operands: ["3+4i", "1-2i"]
//
// Jobs run concurrently with a bounded number of workers. A failing job is
// reported in its Result and never stops the others.
package batch

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job kinds.
const (
	KindRoots       = "roots"
	KindDeterminant = "determinant"
	KindInverse     = "inverse"
	KindComplex     = "complex"
)

var (
	// ErrNoJobs is returned for a job file without jobs.
	ErrNoJobs = errors.New("batch: no jobs")

	// ErrInvalidJob is returned for a job that lacks the fields its kind needs.
	ErrInvalidJob = errors.New("batch: invalid job")
)

// Job is one entry of the job file.
type Job struct {
	Name         string      `yaml:"name"`
	Kind         string      `yaml:"kind"`
	Coefficients []float64   `yaml:"coefficients,omitempty"`
	Matrix       [][]float64 `yaml:"matrix,omitempty"`
	Op           string      `yaml:"op,omitempty"`
	Operands     []string    `yaml:"operands,omitempty"`
}

// File is the root of a job file.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Validate checks that the job carries the inputs its kind requires.
func (j Job) Validate() error {
	switch j.Kind {
	case KindRoots:
		if len(j.Coefficients) == 0 {
			return fmt.Errorf("job %q: roots needs coefficients: %w", j.Name, ErrInvalidJob)
		}
	case KindDeterminant, KindInverse:
		if len(j.Matrix) == 0 {
			return fmt.Errorf("job %q: %s needs a matrix: %w", j.Name, j.Kind, ErrInvalidJob)
		}
	case KindComplex:
		if j.Op == "" {
			return fmt.Errorf("job %q: complex needs op: %w", j.Name, ErrInvalidJob)
		}
	default:
		return fmt.Errorf("job %q: unknown kind %q: %w", j.Name, j.Kind, ErrInvalidJob)
	}

	return nil
}

// ParseJobs decodes a job file. Unnamed jobs are named "job-<n>" (1-based).
func ParseJobs(data []byte) ([]Job, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("batch: parse: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, ErrNoJobs
	}
	for i := range f.Jobs {
		if f.Jobs[i].Name == "" {
			f.Jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
	}

	return f.Jobs, nil
}

// LoadJobs reads and decodes the job file at path.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}

	return ParseJobs(data)
}
