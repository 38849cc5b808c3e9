// Package pdfsplit splits a multi-page PDF into standalone single-page PDFs
// so each page can be sent to the document extractor independently.
package pdfsplit

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
)

var (
	// ErrNotPDF is returned when the input does not carry a PDF header.
	ErrNotPDF = errors.New("input is not a PDF")
	// ErrNoPages is returned when the input yields zero pages.
	ErrNoPages = errors.New("pdf has no pages")
)

// Default US Letter dimensions in points, used when a page carries no usable
// MediaBox.
const (
	fallbackWidth  = 612.0
	fallbackHeight = 792.0
)

// Split breaks the PDF into one standalone PDF per page, in page order.
// Invalid input fails loudly: a missing PDF header or a document with zero
// pages is always an error.
func Split(pdfBytes []byte) (pages [][]byte, err error) {
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		return nil, ErrNotPDF
	}
	// The importer panics on structurally broken PDFs; surface that as an
	// ordinary error.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	total, err := pageCount(pdfBytes)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNoPages
	}

	pages = make([][]byte, 0, total)
	for pageNum := 1; pageNum <= total; pageNum++ {
		page, err := extractPage(pdfBytes, pageNum)
		if err != nil {
			return nil, fmt.Errorf("split page %d: %w", pageNum, err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// pageCount imports the first page to make the importer read the source, then
// counts the page sizes it reports.
func pageCount(pdfBytes []byte) (int, error) {
	pdf := fpdf.New("P", "pt", "", "")
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(pdfBytes))
	importer.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
	if pdf.Err() {
		return 0, fmt.Errorf("read pdf: %w", pdf.Error())
	}
	return len(importer.GetPageSizes()), nil
}

func extractPage(pdfBytes []byte, pageNum int) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "", "")
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(pdfBytes))

	tpl := importer.ImportPageFromStream(pdf, &rs, pageNum, "/MediaBox")

	width, height := fallbackWidth, fallbackHeight
	if box, ok := importer.GetPageSizes()[pageNum]["/MediaBox"]; ok {
		if box["w"] > 0 && box["h"] > 0 {
			width, height = box["w"], box["h"]
		}
	}

	pdf.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})
	importer.UseImportedTemplate(pdf, tpl, 0, 0, width, 0)

	if pdf.Err() {
		return nil, fmt.Errorf("import page: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write page pdf: %w", err)
	}
	return buf.Bytes(), nil
}
