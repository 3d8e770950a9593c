// Package importer bulk-loads custom domains from an Excel workbook.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jonesrussell/omnibar/internal/logger"
	"github.com/jonesrussell/omnibar/internal/suggest"
)

// RowError reports why a single spreadsheet row was rejected.
type RowError struct {
	Row    int    `json:"row"`
	Domain string `json:"domain"`
	Error  string `json:"error"`
}

// Result summarizes an import run.
type Result struct {
	Added  int        `json:"added"`
	Errors []RowError `json:"errors,omitempty"`
}

// Importer feeds spreadsheet rows through the custom domain pipeline.
type Importer struct {
	custom *suggest.CustomSource
	logger logger.Logger
}

func NewImporter(custom *suggest.CustomSource, log logger.Logger) *Importer {
	return &Importer{
		custom: custom,
		logger: log,
	}
}

// Import reads domains from the first column of the first sheet and adds
// each through the same validation and duplicate detection as a single add.
// Rejected rows are reported per row; the batch continues past them.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Result, error) {
	rows, err := ParseWorkbook(r)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, row := range rows {
		if addErr := i.custom.Add(ctx, row.Domain); addErr != nil {
			result.Errors = append(result.Errors, RowError{
				Row:    row.Row,
				Domain: row.Domain,
				Error:  addErr.Error(),
			})
			continue
		}
		result.Added++
	}

	i.logger.Info("Domain import finished",
		logger.Int("added", result.Added),
		logger.Int("rejected", len(result.Errors)),
	)
	return result, nil
}

// DomainRow is one parsed spreadsheet row.
type DomainRow struct {
	Row    int // Excel row number (1-based, for error reporting)
	Domain string
}

// ParseWorkbook extracts domains from the first column of the first sheet.
// A first row whose cell reads "domain" is treated as a header and skipped,
// as are blank rows.
func ParseWorkbook(r io.Reader) ([]DomainRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	out := make([]DomainRow, 0, len(rows))
	for idx, cells := range rows {
		if len(cells) == 0 {
			continue
		}
		domain := strings.TrimSpace(cells[0])
		if domain == "" {
			continue
		}
		if idx == 0 && strings.EqualFold(domain, "domain") {
			continue
		}
		out = append(out, DomainRow{
			Row:    idx + 1,
			Domain: domain,
		})
	}
	return out, nil
}
