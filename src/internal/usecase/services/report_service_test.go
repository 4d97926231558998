package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/usecase/services"
	"github.com/xuri/excelize/v2"
)

func TestReportServiceExportPayments(t *testing.T) {
	f := newFixture(t)
	verified := f.createPayment(t, customerA)
	f.createPayment(t, customerB)
	f.review(t, verifier, verified, true)

	svc := services.NewReportService(f.payments, f.employees)
	file, err := svc.ExportPayments(context.Background(), supervisor, "verified")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if file.Rows != 1 {
		t.Fatalf("expected 1 row, got %d", file.Rows)
	}

	book, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer book.Close()

	rows, err := book.GetRows("Payments")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}
	if rows[0][0] != "Payment ID" || rows[1][0] != verified {
		t.Fatalf("unexpected workbook contents %v", rows)
	}
	if rows[1][7] != string(domain.PaymentStatusVerified) {
		t.Fatalf("expected VERIFIED status column, got %q", rows[1][7])
	}
}

func TestReportServiceExportRequiresSupervisor(t *testing.T) {
	f := newFixture(t)
	svc := services.NewReportService(f.payments, f.employees)

	if _, err := svc.ExportPayments(context.Background(), verifier, ""); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	if _, err := svc.ExportPayments(context.Background(), customerA, ""); !domain.IsAuth(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if _, err := svc.ExportPayments(context.Background(), admin, "archived"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReportServiceExportAppliesSheetLayout(t *testing.T) {
	f := newFixture(t)
	f.createPayment(t, customerA)

	svc := services.NewReportService(f.payments, f.employees)
	file, err := svc.ExportPayments(context.Background(), supervisor, "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	book, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer book.Close()

	props, err := book.GetDocProps()
	if err != nil {
		t.Fatalf("read doc props: %v", err)
	}
	if props.Creator != supervisor.ID || props.Title != "Payments" {
		t.Fatalf("unexpected doc props %+v", props)
	}

	width, err := book.GetColWidth("Payments", "A")
	if err != nil {
		t.Fatalf("read column width: %v", err)
	}
	if width != 38 {
		t.Fatalf("expected id column width 38, got %v", width)
	}

	panes, err := book.GetPanes("Payments")
	if err != nil {
		t.Fatalf("read panes: %v", err)
	}
	if !panes.Freeze || panes.YSplit != 1 || panes.TopLeftCell != "A2" {
		t.Fatalf("expected frozen header row, got %+v", panes)
	}
}
