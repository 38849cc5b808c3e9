package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/crashops/crashextract/pkg/crashdoc"
)

// Row levels used in the workbook's Level column.
const (
	levelSectionHeader = "Section Header"
	levelParent        = "Parent"
	levelChild         = "Child"
	levelEntity        = "Entity"
	levelPersonHeader  = "Person Header"
	levelSeparator     = "Separator"
)

const maxSheetNameLen = 31

// Workbook renders one sheet per (page, section, parent record) named
// P{page}_{section}_{n}. Names are truncated to Excel's 31-character limit;
// a truncated name that collides gets a numeric suffix so no sheet silently
// overwrites another.
func Workbook(doc *crashdoc.DocumentResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	used := map[string]bool{}
	wrote := false

	for _, page := range doc.Pages {
		for _, section := range crashdoc.Sections {
			for n, parent := range page.Sections[section] {
				base := fmt.Sprintf("P%d_%s_%d", page.PageNumber, section, n+1)
				name := uniqueSheetName(base, used)
				if _, err := f.NewSheet(name); err != nil {
					return nil, fmt.Errorf("create sheet %s: %w", name, err)
				}
				if err := writeParentSheet(f, name, page.PageNumber, section, parent); err != nil {
					return nil, fmt.Errorf("write sheet %s: %w", name, err)
				}
				wrote = true
			}
		}
	}

	if wrote {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("remove default sheet: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func uniqueSheetName(base string, used map[string]bool) string {
	name := truncate(base, maxSheetNameLen)
	for i := 2; used[name]; i++ {
		suffix := fmt.Sprintf("_%d", i)
		name = truncate(base, maxSheetNameLen-len(suffix)) + suffix
	}
	used[name] = true
	return name
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func (w *sheetWriter) write(page interface{}, level, fieldType, value, confidence string) {
	if w.err != nil {
		return
	}
	w.row++
	cell := fmt.Sprintf("A%d", w.row)
	w.err = w.f.SetSheetRow(w.sheet, cell, &[]interface{}{page, level, fieldType, value, confidence})
}

func writeParentSheet(f *excelize.File, sheet string, pageNum int, section crashdoc.Section, parent *crashdoc.ParentRecord) error {
	w := &sheetWriter{f: f, sheet: sheet}
	w.write("Page", "Level", "Type", "Value", "Confidence")
	w.write(pageNum, levelSectionHeader, string(section), "", "")
	w.write(pageNum, levelParent, parent.Type, cellValue(parent.Value, parent.Decoded, nil), percent(parent.Confidence))

	for _, childType := range parent.ChildOrder {
		for _, child := range parent.ChildFields[childType] {
			if childType == "person_num" {
				writePerson(w, pageNum, child)
				continue
			}
			w.write(pageNum, levelChild, child.Type, cellValue(child.Value, child.Decoded, child.Checked), percent(child.Confidence))
			for _, entity := range child.Entities {
				w.write(pageNum, levelEntity, entity.Type, cellValue(entity.Value, entity.Decoded, entity.Checked), percent(entity.Confidence))
			}
		}
	}
	return w.err
}

// writePerson renders one occupant as a header row, its entity rows, and a
// trailing separator row.
func writePerson(w *sheetWriter, pageNum int, person *crashdoc.ChildRecord) {
	w.write(pageNum, levelPersonHeader, person.Type, person.Value, percent(person.Confidence))
	for _, entity := range person.Entities {
		w.write(pageNum, levelEntity, entity.Type, cellValue(entity.Value, entity.Decoded, entity.Checked), percent(entity.Confidence))
	}
	w.write("", levelSeparator, "", "", "")
}

// cellValue prefers the decoded label over the raw text; checkbox fields
// render their boolean state.
func cellValue(raw, decoded string, checked *bool) string {
	if checked != nil {
		if *checked {
			return "Yes"
		}
		return "No"
	}
	if decoded != "" {
		return decoded
	}
	return raw
}

func percent(confidence float64) string {
	return fmt.Sprintf("%.2f%%", confidence*100)
}
