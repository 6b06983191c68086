package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

type backupService struct {
	BaseService
	backupRepo portsrepo.BackupRepositoryFacade
}

// NewBackupService creates the backup export service.
func NewBackupService(backupRepo portsrepo.BackupRepositoryFacade) portssvc.BackupService {
	return &backupService{backupRepo: backupRepo}
}

// sheetWriter accumulates rows for one sheet and tracks the row cursor.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func newSheet(f *excelize.File, name string, headerStyle int, headers []string) *sheetWriter {
	f.NewSheet(name)
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(name, cell, h)
		f.SetCellStyle(name, cell, cell, headerStyle)
	}
	return &sheetWriter{f: f, sheet: name, row: 1}
}

func (w *sheetWriter) add(values ...any) {
	w.row++
	for i, v := range values {
		col, _ := excelize.ColumnNumberToName(i + 1)
		w.f.SetCellValue(w.sheet, fmt.Sprintf("%s%d", col, w.row), v)
	}
}

// BuildWorkbook assembles the full-dataset spreadsheet, one sheet per table
// plus a summary sheet with row counts. Amounts are written as strings so no
// precision is lost to float conversion.
func (s *backupService) BuildWorkbook(ctx context.Context) (*excelize.File, string, error) {
	customers, err := s.backupRepo.AllCustomers(ctx)
	if err != nil {
		return nil, "", err
	}
	suppliers, err := s.backupRepo.AllSuppliers(ctx)
	if err != nil {
		return nil, "", err
	}
	rates, err := s.backupRepo.AllDailyRates(ctx)
	if err != nil {
		return nil, "", err
	}
	purchases, err := s.backupRepo.AllPurchases(ctx)
	if err != nil {
		return nil, "", err
	}
	sales, err := s.backupRepo.AllSales(ctx)
	if err != nil {
		return nil, "", err
	}
	payments, err := s.backupRepo.AllPayments(ctx)
	if err != nil {
		return nil, "", err
	}
	supplierPayments, err := s.backupRepo.AllSupplierPayments(ctx)
	if err != nil {
		return nil, "", err
	}
	deductions, err := s.backupRepo.AllDeductions(ctx)
	if err != nil {
		return nil, "", err
	}
	expenses, err := s.backupRepo.AllExpenses(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	w := newSheet(f, "Customers", headerStyle, []string{"ID", "Name", "Phone", "Address", "Opening Balance", "Running Balance", "Active"})
	for _, c := range customers {
		w.add(c.CustomerID, c.Name, c.Phone, c.Address, c.OpeningBalance.String(), c.RunningBalance.String(), c.IsActive)
	}

	w = newSheet(f, "Suppliers", headerStyle, []string{"ID", "Name", "Phone", "Opening Balance", "Closing Balance", "Active"})
	for _, sp := range suppliers {
		w.add(sp.SupplierID, sp.Name, sp.Phone, sp.OpeningBalance.String(), sp.ClosingBalance.String(), sp.IsActive)
	}

	w = newSheet(f, "Daily Rates", headerStyle, []string{"ID", "Date", "Default Cost Rate", "Default Sale Rate"})
	for _, r := range rates {
		w.add(r.RateID, r.Date.Format(dto.DateLayout), r.DefaultCostRate.String(), r.DefaultSaleRate.String())
	}

	w = newSheet(f, "Purchases", headerStyle, []string{"ID", "Date", "Supplier", "Vehicle", "Kg", "Cost Rate", "Total Cost", "Amount Paid", "Borrow", "Note"})
	for _, p := range purchases {
		w.add(p.PurchaseID, p.Date.Format(dto.DateLayout), p.SupplierName, p.VehicleNumber,
			p.Kg.String(), p.CostRatePerKg.String(), p.TotalCost().String(), p.AmountPaid.String(), p.BorrowAmount().String(), p.Note)
	}

	w = newSheet(f, "Sales", headerStyle, []string{"ID", "Date", "Customer", "Kg", "Sale Rate", "Cost Rate", "Total", "Received", "Borrow", "Profit", "Note"})
	for _, sl := range sales {
		w.add(sl.SaleID, sl.Date.Format(dto.DateLayout), sl.CustomerName,
			sl.Kg.String(), sl.SaleRatePerKg.String(), sl.CostRateSnapshot.String(),
			sl.TotalAmount().String(), sl.AmountReceived.String(), sl.BorrowAmount().String(), sl.Profit().String(), sl.Note)
	}

	w = newSheet(f, "Payments", headerStyle, []string{"ID", "Date", "Customer", "Amount", "Method", "Allocated", "Note"})
	for _, p := range payments {
		w.add(p.PaymentID, p.Date.Format(dto.DateLayout), p.CustomerName, p.Amount.String(), string(p.Method), p.AutoAllocated, p.Note)
	}

	w = newSheet(f, "Supplier Payments", headerStyle, []string{"ID", "Date", "Supplier", "Amount", "Method", "Note"})
	for _, p := range supplierPayments {
		w.add(p.PaymentID, p.Date.Format(dto.DateLayout), p.SupplierName, p.Amount.String(), string(p.Method), p.Note)
	}

	w = newSheet(f, "Deductions", headerStyle, []string{"ID", "Date", "Customer", "Amount", "Type", "Note"})
	for _, d := range deductions {
		w.add(d.DeductionID, d.Date.Format(dto.DateLayout), d.CustomerName, d.Amount.String(), string(d.DeductionType), d.Note)
	}

	w = newSheet(f, "Expenses", headerStyle, []string{"ID", "Date", "Category", "Amount", "Note"})
	for _, e := range expenses {
		w.add(e.ExpenseID, e.Date.Format(dto.DateLayout), string(e.Category), e.Amount.String(), e.Note)
	}

	now := time.Now()
	sw := &sheetWriter{f: f, sheet: summary, row: 1}
	for i, h := range []string{"Table", "Rows"} {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(summary, cell, h)
		f.SetCellStyle(summary, cell, cell, headerStyle)
	}
	sw.add("Customers", len(customers))
	sw.add("Suppliers", len(suppliers))
	sw.add("Daily Rates", len(rates))
	sw.add("Purchases", len(purchases))
	sw.add("Sales", len(sales))
	sw.add("Payments", len(payments))
	sw.add("Supplier Payments", len(supplierPayments))
	sw.add("Deductions", len(deductions))
	sw.add("Expenses", len(expenses))
	sw.add("Generated At", now.Format(time.RFC3339))

	filename := fmt.Sprintf("poultry_ledger_backup_%s.xlsx", now.Format("20060102_150405"))
	return f, filename, nil
}

// SaveWorkbook builds the workbook and writes it into dir.
func (s *backupService) SaveWorkbook(ctx context.Context, dir string) (string, error) {
	f, filename, err := s.BuildWorkbook(ctx)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := f.SaveAs(filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	s.LogInfo(ctx, "Backup workbook written", "file", filename, "dir", dir)
	return filename, nil
}

// Status returns the row count per exported table.
func (s *backupService) Status(ctx context.Context) (map[string]int64, error) {
	return s.backupRepo.TableCounts(ctx)
}

// LatestBackup returns metadata for the newest workbook in dir. A missing
// directory means no backups have been taken yet.
func (s *backupService) LatestBackup(dir string) (*domain.BackupFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var latest *domain.BackupFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		if latest == nil || info.ModTime().After(latest.ModifiedAt) {
			latest = &domain.BackupFile{
				Name:       entry.Name(),
				SizeBytes:  info.Size(),
				ModifiedAt: info.ModTime(),
			}
		}
	}
	return latest, nil
}
