package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
	"github.com/api-sage/swift-payment-portal/src/internal/usecase/access"
	"github.com/xuri/excelize/v2"
)

const (
	reportSheet       = "Payments"
	reportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportFile struct {
	Name        string
	ContentType string
	Data        []byte
	Rows        int
}

type reportColumn struct {
	Header string
	Width  float64
	Value  func(p domain.Payment) any
}

var reportColumns = []reportColumn{
	{Header: "Payment ID", Width: 38, Value: func(p domain.Payment) any { return p.ID }},
	{Header: "Customer ID", Width: 38, Value: func(p domain.Payment) any { return p.CustomerID }},
	{Header: "Recipient", Width: 24, Value: func(p domain.Payment) any { return p.RecipientName }},
	{Header: "Bank", Width: 24, Value: func(p domain.Payment) any { return p.RecipientBank }},
	{Header: "Account", Width: 22, Value: func(p domain.Payment) any { return p.RecipientAccountNo }},
	{Header: "Amount", Width: 14, Value: func(p domain.Payment) any { return p.Amount.StringFixed(2) }},
	{Header: "SWIFT", Width: 14, Value: func(p domain.Payment) any { return p.SwiftCode }},
	{Header: "Status", Width: 16, Value: func(p domain.Payment) any { return string(p.Status()) }},
	{Header: "Verified By", Width: 14, Value: func(p domain.Payment) any { return strValue(p.VerifiedBy) }},
	{Header: "Verified At", Width: 20, Value: func(p domain.Payment) any { return timeValue(p.VerificationDate) }},
	{Header: "Submitted By", Width: 14, Value: func(p domain.Payment) any { return strValue(p.SubmittedBy) }},
	{Header: "Submitted At", Width: 20, Value: func(p domain.Payment) any { return timeValue(p.SubmissionDate) }},
	{Header: "Created At", Width: 20, Value: func(p domain.Payment) any { return p.CreatedAt.Format("2006-01-02 15:04:05") }},
}

type ReportService struct {
	payments domain.PaymentRepository
	gate     gate
	now      func() time.Time
}

func NewReportService(payments domain.PaymentRepository, employees domain.EmployeeRepository) *ReportService {
	return &ReportService{
		payments: payments,
		gate:     gate{employees: employees},
		now:      time.Now,
	}
}

// ExportPayments renders the payments in the given lifecycle state, or all
// payments when status is empty, as an XLSX workbook.
func (s *ReportService) ExportPayments(ctx context.Context, principal domain.Principal, status string) (ReportFile, error) {
	logger.Info("report service export payments request", logger.Fields{
		"employeeId": principal.ID,
		"status":     status,
	})

	if _, err := s.gate.employee(ctx, principal, access.ExportReport); err != nil {
		logger.Error("report service export payments unauthorized", err, logger.Fields{"employeeId": principal.ID})
		return ReportFile{}, err
	}

	filter, err := statusFilter(status)
	if err != nil {
		return ReportFile{}, err
	}

	payments, err := s.payments.FindMany(ctx, filter, domain.SortCreatedDesc)
	if err != nil {
		err = storeError("find report payments", err)
		logger.Error("report service export payments failed", err, nil)
		return ReportFile{}, err
	}

	data, err := renderPaymentsWorkbook(payments, principal.ID)
	if err != nil {
		logger.Error("report service render workbook failed", err, nil)
		return ReportFile{}, fmt.Errorf("render payments workbook: %w", err)
	}

	label := "all"
	if status != "" {
		label = strings.ToLower(status)
	}
	file := ReportFile{
		Name:        fmt.Sprintf("payments_%s_%s.xlsx", label, s.now().UTC().Format("20060102T150405")),
		ContentType: reportContentType,
		Data:        data,
		Rows:        len(payments),
	}

	logger.Info("report service export payments success", logger.Fields{
		"employeeId": principal.ID,
		"rows":       file.Rows,
	})
	return file, nil
}

func statusFilter(status string) (domain.PaymentFilter, error) {
	submitted := true
	notSubmitted := false

	switch domain.PaymentStatus(strings.ToUpper(strings.TrimSpace(status))) {
	case "":
		return domain.PaymentFilter{}, nil
	case domain.PaymentStatusPendingReview:
		return domain.PaymentFilter{Verification: domain.VerificationUnset, Submitted: &notSubmitted}, nil
	case domain.PaymentStatusVerified:
		return domain.PaymentFilter{Verification: domain.VerificationApproved, Submitted: &notSubmitted}, nil
	case domain.PaymentStatusRejected:
		return domain.PaymentFilter{Verification: domain.VerificationRejected}, nil
	case domain.PaymentStatusSubmitted:
		return domain.PaymentFilter{Submitted: &submitted}, nil
	default:
		return domain.PaymentFilter{}, &domain.ValidationError{
			Field:   "status",
			Message: "must be PENDING_REVIEW, VERIFIED, REJECTED or SUBMITTED",
		}
	}
}

func renderPaymentsWorkbook(payments []domain.Payment, author string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return nil, fmt.Errorf("name report sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{Creator: author, Title: "Payments"}); err != nil {
		return nil, fmt.Errorf("set report properties: %w", err)
	}

	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, col.Header); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(reportSheet, name, name, col.Width); err != nil {
			return nil, fmt.Errorf("size column %s: %w", name, err)
		}
	}

	for rowIdx, payment := range payments {
		for colIdx, col := range reportColumns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(reportSheet, cell, col.Value(payment)); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetPanes(reportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeValue(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format("2006-01-02 15:04:05")
}
