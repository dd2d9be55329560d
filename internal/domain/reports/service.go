package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"rms/internal/domain/booking"
	"rms/internal/domain/interval"
)

// Service turns engine summaries into exportable documents. It never touches
// the engine math itself; all numbers come from the booking service.
type Service struct {
	Bookings *booking.Service
}

func NewService(bookings *booking.Service) *Service {
	return &Service{Bookings: bookings}
}

// UsagePDF renders the per-type usage statement for one employee.
func (s *Service) UsagePDF(ctx context.Context, employeeID, employeeName string) ([]byte, error) {
	usage, err := s.Bookings.Usage(ctx, employeeID, interval.Booking{})
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Leave Usage Statement")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(50, 8, "Leave type", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Allowance", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Used", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range usage {
		pdf.CellFormat(50, 8, row.Name, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, strconv.Itoa(row.AnnualDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, strconv.Itoa(row.Summary.UsedDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, strconv.Itoa(row.Summary.TotalDays), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CalendarCSV exports every active request, one row per calendar segment so
// spreadsheet users see the same blocks the calendar draws.
func (s *Service) CalendarCSV(ctx context.Context) ([]byte, error) {
	entries, err := s.Bookings.CalendarEntries(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"requestId", "employeeId", "leaveTypeId", "segmentStart", "segmentEnd", "workingDays", "status"}); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		for _, seg := range entry.Segments {
			record := []string{
				entry.Request.ID,
				entry.Request.EmployeeID,
				entry.Request.LeaveTypeID,
				seg.Start.Format("2006-01-02"),
				seg.End.Format("2006-01-02"),
				strconv.Itoa(entry.Request.WorkingDays),
				string(entry.Request.Status),
			}
			if err := writer.Write(record); err != nil {
				return nil, err
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
