package pdfsplit

import (
	"errors"
	"testing"
)

func TestSplitRejectsNonPDF(t *testing.T) {
	_, err := Split([]byte("not a pdf at all"))
	if !errors.Is(err, ErrNotPDF) {
		t.Errorf("Split on text input: err = %v, want ErrNotPDF", err)
	}
}

func TestSplitRejectsEmptyInput(t *testing.T) {
	_, err := Split(nil)
	if !errors.Is(err, ErrNotPDF) {
		t.Errorf("Split on empty input: err = %v, want ErrNotPDF", err)
	}
}

func TestSplitRejectsTruncatedPDF(t *testing.T) {
	// Valid header, broken body: must error, never return zero pages.
	pages, err := Split([]byte("%PDF-1.7\ngarbage"))
	if err == nil {
		t.Fatalf("Split on truncated pdf succeeded with %d pages, want error", len(pages))
	}
}
