package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fathomworks/opsbrief/internal/model"
)

// Briefer runs the analysis pipeline for one intake file
type Briefer interface {
	BriefFile(ctx context.Context, path string) (*model.Brief, error)
}

// briefJob analyzes one intake file
type briefJob struct {
	path    string
	briefer Briefer
}

// Execute runs the job
func (j *briefJob) Execute(ctx context.Context) Result {
	brief, err := j.briefer.BriefFile(ctx, j.path)
	return &BriefResult{
		Path:  j.path,
		Brief: brief,
		Error: err,
	}
}

// BriefResult is the outcome of analyzing one intake file
type BriefResult struct {
	Path  string
	Brief *model.Brief
	Error error
}

// Err returns the job error, if any
func (r *BriefResult) Err() error {
	return r.Error
}

// BatchProcessor analyzes multiple intake files concurrently. Each pipeline
// run stays synchronous and pure; only independent intakes run in parallel.
type BatchProcessor struct {
	briefer     Briefer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(briefer Briefer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		briefer:     briefer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given intake files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*BriefResult {
	if len(paths) == 0 {
		return []*BriefResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&briefJob{path: path, briefer: b.briefer})
	}

	results := pool.Wait()

	briefResults := make([]*BriefResult, len(results))
	for i, result := range results {
		briefResults[i] = result.(*BriefResult)
	}

	return briefResults
}

// ProcessManifest reads intake file paths from a manifest and analyzes them
func (b *BatchProcessor) ProcessManifest(ctx context.Context, manifestPath string) ([]*BriefResult, error) {
	paths, err := ReadPathsFromFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a manifest (one per line,
// # comments and duplicates skipped)
func ReadPathsFromFile(manifestPath string) ([]string, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}

	return paths, nil
}
