package export

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/Manav933/Feedback/internal/domain"
)

const sheetName = "Feedbacks"

// Column widths grow with content up to this many character-widths.
const maxColumnWidth = 50

// Excel renders the records as a single-sheet xlsx workbook with a bold
// centered header row and content-sized columns.
func Excel(records []domain.Feedback) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close() //nolint:errcheck

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerRow := make([]any, len(header))
	widths := make([]int, len(header))
	for i, cell := range header {
		headerRow[i] = cell
		widths[i] = utf8.RuneCountInString(cell)
	}
	if err := file.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, err
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := file.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, err
	}

	for i, record := range records {
		row := []any{
			record.ID,
			record.Name,
			record.Email,
			record.Message,
			record.Rating,
			record.CreatedAt.Format(timestampLayout),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
		for col, value := range row {
			if n := utf8.RuneCountInString(fmt.Sprint(value)); n > widths[col] {
				widths[col] = n
			}
		}
	}

	for col, width := range widths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		adjusted := width + 2
		if adjusted > maxColumnWidth {
			adjusted = maxColumnWidth
		}
		if err := file.SetColWidth(sheetName, name, name, float64(adjusted)); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
