package export

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Tickets"

// Header order mirrors the export contract: one row per approved ticket.
// Labels stay in Russian, they are what the administration's template expects.
var Header = []string{"Имя", "Пользователь", "Курс", "Группа", "Причина", "С даты", "По дату", "Описание"}

// BuildTicketsWorkbook renders pre-fetched rows into a workbook: bold header
// with an autofilter, heuristic column widths, and a trailing total row two
// rows below the data. Pure formatting; callers decide what the rows are.
func BuildTicketsWorkbook(rows [][]string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for col, h := range Header {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	end := colName(len(Header)) + "1"
	_ = f.SetCellStyle(sheetName, "A1", end, bold)
	_ = f.AutoFilter(sheetName, "A1:"+end, nil)

	for r, row := range rows {
		for c, val := range row {
			cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
			if err := f.SetCellStr(sheetName, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	// width heuristic from header and the first rows
	for c := 1; c <= len(Header); c++ {
		max := utf8.RuneCountInString(Header[c-1])
		for r := 0; r < len(rows) && r < 50; r++ {
			if c-1 < len(rows[r]) {
				if l := utf8.RuneCountInString(rows[r][c-1]); l > max {
					max = l
				}
			}
		}
		w := float64(max) * 0.9
		if w < 12 {
			w = 12
		}
		if w > 40 {
			w = 40
		}
		_ = f.SetColWidth(sheetName, colName(c), colName(c), w)
	}

	totalCell := fmt.Sprintf("A%d", len(rows)+3)
	if err := f.SetCellStr(sheetName, totalCell, fmt.Sprintf("Всего: %d", len(rows))); err != nil {
		return nil, fmt.Errorf("set total row: %w", err)
	}

	return f, nil
}

func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}
