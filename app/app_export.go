package app

import (
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"github.com/xuri/excelize/v2"

	"jobsdb/app/interfaces"
)

// ExportRequest describes an export of the filtered and sorted subset
// to an XLSX workbook. The whole subset is written, not just the
// visible page.
type ExportRequest struct {
	Filter interfaces.FilterState `json:"filter"`
	Sort   interfaces.SortState   `json:"sort"`
}

// ExportResult reports where the workbook was written and how many
// rows it holds.
type ExportResult struct {
	Path        string `json:"path"`
	RowsWritten int    `json:"rowsWritten"`
}

var exportColumns = []struct {
	header string
	width  float64
	value  func(j *interfaces.Job) string
}{
	{"ID", 14, func(j *interfaces.Job) string { return j.ID }},
	{"Name", 36, func(j *interfaces.Job) string { return j.Name }},
	{"Creator", 22, func(j *interfaces.Job) string { return j.Creator }},
	{"Type", 18, func(j *interfaces.Job) string { return j.JobTypeEdited }},
	{"Players", 10, func(j *interfaces.Job) string { return j.MaxPlayers }},
	{"Verification", 14, func(j *interfaces.Job) string { return j.VerificationType }},
	{"Created", 18, func(j *interfaces.Job) string { return j.CreationDate }},
	{"Updated", 18, func(j *interfaces.Job) string { return j.LastUpdated }},
	{"Scraped", 20, func(j *interfaces.Job) string { return j.ScrapedAt }},
	{"Link", 40, func(j *interfaces.Job) string { return j.OriginalURL }},
	{"Description", 60, func(j *interfaces.Job) string { return j.Description }},
}

// ExportFiltered writes the current filtered subset to an XLSX file
// chosen through a save dialog. Returns a nil result when the dialog
// is cancelled.
func (a *App) ExportFiltered(req ExportRequest) (*ExportResult, error) {
	snap := a.currentSnapshot()
	if snap == nil {
		return nil, fmt.Errorf("no database open")
	}

	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		Title:           "Export Jobs",
		DefaultFilename: "jobs_export.xlsx",
		Filters: []runtime.FileFilter{
			{DisplayName: "Excel Workbook", Pattern: "*.xlsx"},
		},
	})
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	subset := a.pipeline.OrderedSubset(snap, req.Filter, req.Sort)
	if err := writeWorkbook(path, subset); err != nil {
		a.Log("error", fmt.Sprintf("Export failed: %v", err))
		return nil, err
	}

	a.Log("info", fmt.Sprintf("Exported %d jobs to %s", len(subset), path))
	return &ExportResult{Path: path, RowsWritten: len(subset)}, nil
}

func writeWorkbook(path string, jobs []*interfaces.Job) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Jobs"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for i, col := range exportColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, col.width); err != nil {
			return err
		}
	}

	for r, j := range jobs {
		for c, col := range exportColumns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, col.value(j)); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
