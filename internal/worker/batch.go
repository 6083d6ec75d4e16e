package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/medpipe/draftgate/internal/model"
)

// Reviewer reviews one bundle file and produces a report
type Reviewer interface {
	ReviewBundle(ctx context.Context, path string) (*model.Report, error)
}

// ReviewJob reviews a single bundle file
type ReviewJob struct {
	Path     string
	Reviewer Reviewer
}

// Execute runs the review
func (j *ReviewJob) Execute(ctx context.Context) Result {
	report, err := j.Reviewer.ReviewBundle(ctx, j.Path)
	return &ReviewResult{Path: j.Path, Report: report, Error: err}
}

// ReviewResult pairs a bundle path with its report or failure
type ReviewResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the review error, if any
func (r *ReviewResult) GetError() error { return r.Error }

// BatchProcessor reviews many bundle files concurrently. Each run keeps its
// own score history, so cross-run interference is impossible.
type BatchProcessor struct {
	reviewer    Reviewer
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(reviewer Reviewer, concurrency int) *BatchProcessor {
	return &BatchProcessor{reviewer: reviewer, concurrency: concurrency}
}

// ProcessPaths reviews the given bundle files concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ReviewResult {
	if len(paths) == 0 {
		return []*ReviewResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&ReviewJob{Path: path, Reviewer: b.reviewer})
	}

	results := pool.Wait()
	reviewResults := make([]*ReviewResult, len(results))
	for i, result := range results {
		reviewResults[i] = result.(*ReviewResult)
	}
	return reviewResults
}

// ProcessFile reads bundle paths from a manifest (one per line) and reviews
// them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, manifestPath string) ([]*ReviewResult, error) {
	paths, err := ReadPathsFromFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads non-empty, non-comment lines from a manifest,
// deduplicated in order.
func ReadPathsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
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
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return paths, nil
}
