package job

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Export column order, fixed. Mirrors the jobs table.
var exportHeaders = []string{
	"id", "job_id", "client_name", "client_email", "client_phone",
	"job_received_date", "mode_received", "job_description", "type_of_job",
	"assigned_to", "target_completion_date", "status", "is_delivered",
	"invoice_raised", "invoice_number", "invoice_amount", "payment_received",
	"payment_mode", "payment_reference", "created_at", "updated_at",
}

const exportSheet = "Jobs"
const exportTimeLayout = "2006-01-02 15:04:05"

// ExportXLSX renders every job as one row of a single-sheet workbook and
// returns the file bytes. Read-only with respect to the store.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	rows, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, h)
	}

	for n, j := range rows {
		values := []any{
			j.ID, j.JobID, j.ClientName, j.ClientEmail, j.ClientPhone,
			exportTime(j.JobReceivedDate), j.ModeReceived, j.JobDescription,
			j.TypeOfJob, j.AssignedTo, exportTime(j.TargetCompletionDate),
			j.Status, flagInt(j.IsDelivered), flagInt(j.InvoiceRaised),
			j.InvoiceNumber, j.InvoiceAmount, flagInt(j.PaymentReceived),
			j.PaymentMode, j.PaymentReference,
			exportTime(j.CreatedAt), exportTime(j.UpdatedAt),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, n+2)
			_ = f.SetCellValue(exportSheet, cell, v)
		}
	}

	_ = f.SetColWidth(exportSheet, "A", "B", 10)
	_ = f.SetColWidth(exportSheet, "C", "E", 22)
	_ = f.SetColWidth(exportSheet, "F", "F", 20)
	_ = f.SetColWidth(exportSheet, "G", "I", 24)
	_ = f.SetColWidth(exportSheet, "J", "U", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func exportTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(exportTimeLayout)
}

func flagInt(f Flag) int {
	if f {
		return 1
	}
	return 0
}
