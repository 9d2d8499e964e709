// Package export renders report data as spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/rongwang/seabirds-server/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContributionsSheet is the name of the worksheet holding the ledger.
const ContributionsSheet = "Contributions"

// ContentType is the media type of the workbooks produced here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var contributionHeaders = []string{"Month", "Paid on", "Player", "Amount"}

// WriteContributions writes the monthly contribution ledger as an xlsx
// workbook: a header row, one row per ledger entry in the given order and a
// closing total row.
func WriteContributions(w io.Writer, contributions []models.MonthlyContribution) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ContributionsSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	f.SetColWidth(ContributionsSheet, "A", "A", 18)
	f.SetColWidth(ContributionsSheet, "B", "B", 12)
	f.SetColWidth(ContributionsSheet, "C", "C", 24)
	f.SetColWidth(ContributionsSheet, "D", "D", 12)

	for i, header := range contributionHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ContributionsSheet, cell, header)
		f.SetCellStyle(ContributionsSheet, cell, cell, headerStyle)
	}

	total := decimal.Zero
	for i, c := range contributions {
		row := i + 2
		// Postgres pads month names; the sheet does not need it.
		f.SetCellValue(ContributionsSheet, fmt.Sprintf("A%d", row), strings.Join(strings.Fields(c.PaidMonth), " "))
		f.SetCellValue(ContributionsSheet, fmt.Sprintf("B%d", row), c.PaidOn)
		f.SetCellValue(ContributionsSheet, fmt.Sprintf("C%d", row), c.PaidName)
		f.SetCellValue(ContributionsSheet, fmt.Sprintf("D%d", row), c.PaidAmount.InexactFloat64())
		total = total.Add(c.PaidAmount.Decimal)
	}

	totalRow := len(contributions) + 2
	f.SetCellValue(ContributionsSheet, fmt.Sprintf("C%d", totalRow), "Total")
	f.SetCellValue(ContributionsSheet, fmt.Sprintf("D%d", totalRow), total.InexactFloat64())

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
