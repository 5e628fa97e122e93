package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hanainplan/internal/domain"
)

const sheetName = "Counselors"

// columns defines the header row of the counselor export.
var columns = []string{
	"User ID",
	"Name",
	"Phone",
	"Birth Date",
	"Gender",
	"Employee ID",
	"Branch Code",
	"Branch Name",
	"Department",
	"Position",
	"License Type",
	"License Number",
	"License Issue Date",
	"Hire Date",
	"Work Status",
	"Registered At",
}

// Writer builds the counselor roster workbook.
type Writer struct {
	file *excelize.File
	row  int
}

// NewWriter creates a Writer with the header row in place.
func NewWriter() (*Writer, error) {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), sheetName)

	w := &Writer{file: f, row: 1}
	if err := w.writeRow(columns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return w, nil
}

// WriteCounselors appends one row per record.
func (w *Writer) WriteCounselors(records []domain.CounselorRecord) error {
	for i := range records {
		if err := w.writeRow(recordToRow(&records[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return nil
}

// WriteTo writes the finished workbook and closes it.
func (w *Writer) WriteTo(out io.Writer) error {
	defer func() { _ = w.file.Close() }()
	if err := w.file.Write(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (w *Writer) writeRow(values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := w.file.SetSheetRow(sheetName, cell, &row); err != nil {
		return err
	}
	w.row++
	return nil
}

func recordToRow(r *domain.CounselorRecord) []string {
	return []string{
		fmt.Sprintf("%d", r.UserID),
		r.UserName,
		r.PhoneNumber,
		r.BirthDate,
		string(r.Gender),
		r.EmployeeID,
		deref(r.BranchCode),
		deref(r.BranchName),
		deref(r.Department),
		deref(r.Position),
		deref(r.LicenseType),
		deref(r.LicenseNumber),
		deref(r.LicenseIssueDate),
		deref(r.HireDate),
		r.WorkStatus,
		r.CreatedDate.Format("2006-01-02 15:04:05"),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
