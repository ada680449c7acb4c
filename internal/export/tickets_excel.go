// Package export renders the ticket table as an xlsx workbook for admins.
package export

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/helpdesk/internal/models"
	"github.com/xuri/excelize/v2"
)

var header = []string{
	"ID", "Type", "Priority", "Status",
	"Subject", "Student", "Student mobile", "Reg number",
	"Remarks", "Created by", "Creator mobile", "Created at",
}

// TicketsWorkbook builds a single-sheet workbook with a bold, filterable
// header row and one row per ticket, in the order given.
func TicketsWorkbook(tickets []models.Ticket) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Tickets"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for col, h := range header {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	end := colName(len(header)) + "1"
	_ = f.SetCellStyle(sheet, "A1", end, bold)
	_ = f.AutoFilter(sheet, "A1:"+end, nil)

	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, ticketRow(t))
	}
	for r, row := range rows {
		for c, val := range row {
			cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
			if err := f.SetCellStr(sheet, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	// heuristic widths from the header and the first rows
	for c := 1; c <= len(header); c++ {
		maxim := len(header[c-1])
		for r := 0; r < minim(50, len(rows)); r++ {
			if l := len(rows[r][c-1]); l > maxim {
				maxim = l
			}
		}
		w := float64(maxim) * 0.9
		if w < 12 {
			w = 12
		}
		if w > 40 {
			w = 40
		}
		_ = f.SetColWidth(sheet, colName(c), colName(c), w)
	}

	return f, nil
}

func ticketRow(t models.Ticket) []string {
	return []string{
		t.ID,
		models.TypeLabel(t.TicketType),
		string(t.Priority),
		string(t.Status),
		t.SubjectName,
		t.StudentName,
		t.StudentMobile,
		t.StudentRegNumber,
		t.Remarks,
		t.CreatedBy,
		t.UserMobile,
		t.CreatedAt.Format(time.RFC3339),
	}
}

// colName converts a 1-based column index to its A1-style name.
func colName(n int) string {
	name := ""
	for n > 0 {
		n--
		name = string(rune('A'+n%26)) + name
		n /= 26
	}
	return name
}

func minim(a, b int) int {
	if a < b {
		return a
	}
	return b
}
