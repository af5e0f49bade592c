package lint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/yaklabco/humorlint/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotText indicates the file is not valid UTF-8 text.
	ErrNotText = errors.New("not valid UTF-8 text")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	*Result

	// Path is the file path that was processed.
	Path string

	// Info captures the file state at read time.
	Info *fsutil.FileInfo
}

// Summary returns a short human-readable status for the file.
func (pr *PipelineResult) Summary() string {
	if pr.Result != nil && pr.HasIssues() {
		return "issues found"
	}
	return "ok"
}

// Pipeline reads files from disk and evaluates them with an Engine.
type Pipeline struct {
	Engine *Engine
}

// NewPipeline creates a new Pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile reads path and evaluates its content.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*PipelineResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, content)
	if err != nil {
		return nil, err
	}
	result.Info = info

	return result, nil
}

// ProcessContent evaluates content as if it had been read from path.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte) (*PipelineResult, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s", ErrNotText, path)
	}

	return &PipelineResult{
		Result: p.Engine.Evaluate(ctx, path, string(content)),
		Path:   path,
	}, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
// It uses errors.Is for robust error detection rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrNotText)
}
