// Package collect parses test source files concurrently.
package collect

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tagcat/internal/domain"
)

// FileParser extracts the declarations of one source file
type FileParser interface {
	FindDeclarations(filePath string) (domain.TestFile, error)
}

// Progress receives progress updates while files are parsed
type Progress interface {
	Update(done, failed int)
	Finish()
}

// WorkerPool manages a pool of workers for parallel file parsing
type WorkerPool struct {
	workers   int
	parser    FileParser
	scheduler Scheduler
	progress  Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(workers int, parser FileParser, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		workers:   workers,
		parser:    parser,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Result is the outcome of parsing a set of files
type Result struct {
	Files    []domain.TestFile // Parsed files, in input order
	Issues   []domain.Issue    // Files that could not be read, in input order
	Duration time.Duration
}

// Collect parses files in parallel. Files are returned in input order
// whatever the worker count. With failFast the first read error stops the
// remaining workers and is returned; otherwise unreadable files become issues.
func (wp *WorkerPool) Collect(ctx context.Context, files []string, failFast bool) (*Result, error) {
	startTime := time.Now()
	if len(files) == 0 {
		return &Result{}, nil
	}

	parsed := make([]domain.TestFile, len(files))
	readErrs := make([]error, len(files))

	var mu sync.Mutex
	var done, failed int

	g, gctx := errgroup.WithContext(ctx)
	for workerID, shard := range wp.scheduler.Schedule(files, wp.workers) {
		workerID, shard := workerID, shard
		g.Go(func() error {
			for _, idx := range shard {
				if err := gctx.Err(); err != nil {
					return err
				}

				file, err := wp.parser.FindDeclarations(files[idx])
				if err != nil {
					log.Warn().Err(err).Int("worker", workerID).Str("file", files[idx]).Msg("failed to parse file")
					if failFast {
						return fmt.Errorf("parse %s: %w", files[idx], err)
					}
					readErrs[idx] = err
				} else {
					parsed[idx] = file
				}

				mu.Lock()
				done++
				if err != nil {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(done, failed)
				}
				mu.Unlock()
			}
			return nil
		})
	}

	err := g.Wait()
	if wp.progress != nil {
		wp.progress.Finish()
	}
	if err != nil {
		return nil, err
	}

	result := &Result{Duration: time.Since(startTime)}
	for idx, file := range parsed {
		if readErrs[idx] != nil {
			result.Issues = append(result.Issues, domain.Issue{
				Kind:     domain.IssueRead,
				Location: domain.SourceLocation{File: files[idx]},
				Message:  readErrs[idx].Error(),
			})
			continue
		}
		result.Files = append(result.Files, file)
	}
	return result, nil
}
