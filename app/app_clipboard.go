package app

import (
	"fmt"
	"strings"

	clipboard "golang.design/x/clipboard"

	"jobsdb/app/interfaces"
)

// Maximum clipboard size in bytes (10MB) - helps avoid X11 BadLength errors on Linux
const maxClipboardSize = 10 * 1024 * 1024

// safeClipboardWrite attempts to write data to clipboard with panic recovery.
// Returns an error if the write fails or data is too large.
func safeClipboardWrite(format clipboard.Format, data []byte) (err error) {
	if len(data) > maxClipboardSize {
		return fmt.Errorf("data too large for clipboard (%d bytes, max %d bytes / %.1f MB). Try selecting fewer rows",
			len(data), maxClipboardSize, float64(maxClipboardSize)/(1024*1024))
	}

	// Use defer/recover to catch panics from clipboard operations
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard write failed: %v", r)
		}
	}()

	clipboard.Write(format, data)
	return nil
}

// RowRange is a half-open [Start, End) row selection over the
// filtered and sorted subset.
type RowRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// CopySelectionRequest describes which rows of the current result set
// to copy. With SelectAll the ranges are ignored and the whole subset
// is copied.
type CopySelectionRequest struct {
	Filter    interfaces.FilterState `json:"filter"`
	Sort      interfaces.SortState   `json:"sort"`
	Ranges    []RowRange             `json:"ranges"`
	SelectAll bool                   `json:"selectAll"`
}

// CopySelectionResult reports how many rows ended up on the clipboard.
type CopySelectionResult struct {
	RowsCopied int `json:"rowsCopied"`
}

var copyColumns = []string{
	"Name", "Creator", "Type", "Players", "Verification",
	"Created", "Updated", "Scraped", "Link", "Description",
}

// CopySelection copies the selected catalog rows to the clipboard as
// tab-separated text, one job per line, in the current sort order.
func (a *App) CopySelection(req CopySelectionRequest) (*CopySelectionResult, error) {
	if a == nil {
		return nil, fmt.Errorf("app not initialised")
	}

	// Lazy init clipboard
	a.clipOnce.Do(func() {
		if err := clipboard.Init(); err == nil {
			a.clipOK = true
		} else {
			a.clipOK = false
			a.Log("error", fmt.Sprintf("Clipboard init failed: %v", err))
		}
	})
	if !a.clipOK {
		return nil, fmt.Errorf("clipboard not available")
	}

	snap := a.currentSnapshot()
	if snap == nil {
		return &CopySelectionResult{RowsCopied: 0}, nil
	}
	subset := a.pipeline.OrderedSubset(snap, req.Filter, req.Sort)

	sanitize := func(s string) string {
		ss := strings.ReplaceAll(s, "\t", " ")
		ss = strings.ReplaceAll(ss, "\r", " ")
		ss = strings.ReplaceAll(ss, "\n", " ")
		return ss
	}

	var b strings.Builder
	for i, h := range copyColumns {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(h)
	}
	b.WriteByte('\n')

	appendRow := func(j *interfaces.Job) {
		cells := []string{
			j.Name, j.Creator, j.JobTypeEdited, j.MaxPlayers, j.VerificationType,
			j.CreationDate, j.LastUpdated, j.ScrapedAt, j.OriginalURL, j.Description,
		}
		for i, c := range cells {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(sanitize(c))
		}
		b.WriteByte('\n')
	}

	rowsCopied := 0
	if req.SelectAll {
		for _, j := range subset {
			appendRow(j)
		}
		rowsCopied = len(subset)
	} else {
		for _, rng := range req.Ranges {
			start, end := rng.Start, rng.End
			if start < 0 {
				start = 0
			}
			if end > len(subset) {
				end = len(subset)
			}
			for i := start; i < end; i++ {
				appendRow(subset[i])
				rowsCopied++
			}
		}
	}

	outBytes := []byte(b.String())
	if err := safeClipboardWrite(clipboard.FmtText, outBytes); err != nil {
		a.Log("error", fmt.Sprintf("Clipboard write failed: %v", err))
		return nil, fmt.Errorf("failed to copy to clipboard: %v", err)
	}

	a.Log("info", fmt.Sprintf("Copied %d rows (%d bytes) to clipboard", rowsCopied, len(outBytes)))
	return &CopySelectionResult{RowsCopied: rowsCopied}, nil
}
