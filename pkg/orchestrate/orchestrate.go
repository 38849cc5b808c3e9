// Package orchestrate fans page-level OCR calls out across a bounded worker
// pool and assembles the per-page results into one document record.
package orchestrate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/crashops/crashextract/pkg/crashdoc"
	"github.com/crashops/crashextract/pkg/crashreport"
)

// OCR is the external document-understanding collaborator. Process must be
// callable independently per page; it returns the extracted fields and the
// page's full text.
type OCR interface {
	Process(ctx context.Context, pageBytes []byte) ([]crashdoc.ExtractedField, string, error)
}

// RetryPolicy controls retries around the OCR call only. Backoff maps a
// zero-indexed attempt to a wait duration; a nil Backoff retries immediately.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
}

// DefaultRetryPolicy retries the OCR call up to three times with exponential
// backoff capped at 30 seconds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff: func(attempt int) time.Duration {
			d := time.Duration(1<<uint(attempt)) * time.Second
			if d > 30*time.Second {
				d = 30 * time.Second
			}
			return d
		},
	}
}

// Progress is an advisory callback reporting a completed page. Pages complete
// out of order; done counts completions so far, not the page number.
type Progress func(page, total, done int)

const maxWorkers = 10

// Orchestrator drives the per-page pipeline: OCR, tree normalization, record
// reconstruction.
type Orchestrator struct {
	OCR           OCR
	Reconstructor *crashreport.Reconstructor
	Retry         RetryPolicy
	Log           *slog.Logger
	OnProgress    Progress
}

// New returns an Orchestrator with the default retry policy and
// reconstruction rules.
func New(ocr OCR, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		OCR:           ocr,
		Reconstructor: crashreport.New(),
		Retry:         DefaultRetryPolicy(),
		Log:           log,
	}
}

// Process runs every page through OCR, normalization, and reconstruction
// with bounded concurrency. Pages that fail are dropped from the result and
// counted; the surviving pages keep ascending page order. Process fails only
// when given no pages or when the context is cancelled.
func (o *Orchestrator) Process(ctx context.Context, pages [][]byte) (*crashdoc.DocumentResult, error) {
	total := len(pages)
	if total == 0 {
		return nil, fmt.Errorf("no pages to process")
	}

	workers := maxWorkers
	if total < workers {
		workers = total
	}

	type pageOutcome struct {
		page   int
		result *crashdoc.PageResult
		err    error
	}
	results := make(chan pageOutcome, total)
	sem := make(chan struct{}, workers)

	for i, pageBytes := range pages {
		pageNum := i + 1
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		go func(pageNum int, pageBytes []byte) {
			defer func() { <-sem }()
			result, err := o.processPage(ctx, pageNum, pageBytes)
			results <- pageOutcome{page: pageNum, result: result, err: err}
		}(pageNum, pageBytes)
	}

	// Results land in a pre-sized slice indexed by page so the output order
	// never depends on completion order; failed pages stay nil.
	ordered := make([]*crashdoc.PageResult, total)
	failed := 0
	for done := 1; done <= total; done++ {
		outcome := <-results
		if outcome.err != nil {
			o.Log.Error("page processing failed", "page", outcome.page, "error", outcome.err)
			failed++
		} else {
			ordered[outcome.page-1] = outcome.result
		}
		if o.OnProgress != nil {
			o.OnProgress(outcome.page, total, done)
		}
	}

	doc := &crashdoc.DocumentResult{TotalPages: total, Failed: failed}
	var texts []string
	for _, page := range ordered {
		if page == nil {
			continue
		}
		doc.Pages = append(doc.Pages, page)
		texts = append(texts, page.Text)
	}
	doc.Text = strings.Join(texts, "\n")

	o.Log.Info("document processed", "total", total, "succeeded", len(doc.Pages), "failed", failed)
	return doc, nil
}

func (o *Orchestrator) processPage(ctx context.Context, pageNum int, pageBytes []byte) (*crashdoc.PageResult, error) {
	fields, text, err := o.ocrWithRetry(ctx, pageNum, pageBytes)
	if err != nil {
		return nil, fmt.Errorf("ocr page %d: %w", pageNum, err)
	}

	sections, unmapped := crashdoc.Normalize(fields)
	if unmapped > 0 {
		o.Log.Warn("fields matched no section", "page", pageNum, "count", unmapped)
	}
	o.Reconstructor.Reconstruct(ctx, sections)

	return &crashdoc.PageResult{
		PageNumber: pageNum,
		Text:       text,
		Sections:   sections,
	}, nil
}

// ocrWithRetry wraps only the OCR call in the retry policy; normalization and
// reconstruction are deterministic and never retried.
func (o *Orchestrator) ocrWithRetry(ctx context.Context, pageNum int, pageBytes []byte) ([]crashdoc.ExtractedField, string, error) {
	attempts := o.Retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		fields, text, err := o.OCR.Process(ctx, pageBytes)
		if err == nil {
			return fields, text, nil
		}
		lastErr = err
		if attempt == attempts-1 {
			break
		}
		o.Log.Warn("ocr attempt failed", "page", pageNum, "attempt", attempt+1, "error", err)
		var wait time.Duration
		if o.Retry.Backoff != nil {
			wait = o.Retry.Backoff(attempt)
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, "", ctx.Err()
		}
	}
	return nil, "", lastErr
}
