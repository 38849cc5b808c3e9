package orchestrate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/crashops/crashextract/pkg/crashdoc"
)

// fakeOCR returns one charges field naming the page, or fails for pages in
// failPages.
type fakeOCR struct {
	failPages map[int]bool
	calls     atomic.Int64

	mu       sync.Mutex
	maxInUse int
	inUse    int
}

func (f *fakeOCR) Process(_ context.Context, pageBytes []byte) ([]crashdoc.ExtractedField, string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.inUse++
	if f.inUse > f.maxInUse {
		f.maxInUse = f.inUse
	}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inUse--
		f.mu.Unlock()
	}()

	page := int(pageBytes[0])
	if f.failPages[page] {
		return nil, "", errors.New("ocr unavailable")
	}
	field := crashdoc.ExtractedField{
		Type:  "charges_charge",
		Value: fmt.Sprintf("charge on page %d", page),
	}
	return []crashdoc.ExtractedField{field}, fmt.Sprintf("text %d", page), nil
}

func pageBuffers(n int) [][]byte {
	pages := make([][]byte, n)
	for i := range pages {
		pages[i] = []byte{byte(i + 1)}
	}
	return pages
}

func noRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessDropsFailedPageKeepsOrder(t *testing.T) {
	ocr := &fakeOCR{failPages: map[int]bool{3: true}}
	o := New(ocr, discardLogger())
	o.Retry = noRetry()

	doc, err := o.Process(context.Background(), pageBuffers(5))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if doc.TotalPages != 5 || doc.Failed != 1 {
		t.Errorf("TotalPages/Failed = %d/%d, want 5/1", doc.TotalPages, doc.Failed)
	}
	wantPages := []int{1, 2, 4, 5}
	if len(doc.Pages) != len(wantPages) {
		t.Fatalf("pages = %d, want %d", len(doc.Pages), len(wantPages))
	}
	for i, want := range wantPages {
		if doc.Pages[i].PageNumber != want {
			t.Errorf("page %d = %d, want %d", i, doc.Pages[i].PageNumber, want)
		}
	}
	if doc.Text != "text 1\ntext 2\ntext 4\ntext 5" {
		t.Errorf("Text = %q", doc.Text)
	}
}

func TestProcessRetriesOCR(t *testing.T) {
	ocr := &fakeOCR{failPages: map[int]bool{1: true}}
	o := New(ocr, discardLogger())
	o.Retry = RetryPolicy{MaxAttempts: 3, Backoff: func(int) time.Duration { return 0 }}

	doc, err := o.Process(context.Background(), pageBuffers(1))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if doc.Failed != 1 {
		t.Errorf("Failed = %d, want 1", doc.Failed)
	}
	if got := ocr.calls.Load(); got != 3 {
		t.Errorf("ocr calls = %d, want 3", got)
	}
}

func TestProcessBoundsConcurrency(t *testing.T) {
	ocr := &fakeOCR{}
	o := New(ocr, discardLogger())
	o.Retry = noRetry()

	if _, err := o.Process(context.Background(), pageBuffers(25)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if ocr.maxInUse > maxWorkers {
		t.Errorf("max concurrent OCR calls = %d, want <= %d", ocr.maxInUse, maxWorkers)
	}
}

func TestProcessNoPages(t *testing.T) {
	o := New(&fakeOCR{}, discardLogger())
	if _, err := o.Process(context.Background(), nil); err == nil {
		t.Error("Process with no pages succeeded, want error")
	}
}

func TestProcessReportsProgress(t *testing.T) {
	ocr := &fakeOCR{}
	o := New(ocr, discardLogger())
	o.Retry = noRetry()

	var mu sync.Mutex
	var doneSeen []int
	o.OnProgress = func(page, total, done int) {
		mu.Lock()
		doneSeen = append(doneSeen, done)
		mu.Unlock()
	}

	if _, err := o.Process(context.Background(), pageBuffers(4)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(doneSeen) != 4 {
		t.Fatalf("progress calls = %d, want 4", len(doneSeen))
	}
	for i, done := range doneSeen {
		if done != i+1 {
			t.Errorf("done counter %d = %d, want %d", i, done, i+1)
		}
	}
}
