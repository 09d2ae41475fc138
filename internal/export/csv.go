package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/Manav933/Feedback/internal/domain"
)

// Attachment filenames advertised via Content-Disposition.
const (
	CSVFilename   = "feedbacks.csv"
	ExcelFilename = "feedbacks.xlsx"
)

const timestampLayout = "2006-01-02 15:04:05"

var header = []string{"ID", "Name", "Email", "Message", "Rating", "Created At"}

// CSV renders the records as CSV bytes, one row per record in the given order.
func CSV(records []domain.Feedback) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(header); err != nil {
		return nil, err
	}
	for _, record := range records {
		row := []string{
			record.ID,
			record.Name,
			record.Email,
			record.Message,
			strconv.Itoa(record.Rating),
			record.CreatedAt.Format(timestampLayout),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
