package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daetec/vendas-cli/internal/core/ports/driven"
	"github.com/daetec/vendas-cli/internal/core/ports/driving"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// EmptyReportMessage is returned when the store holds no sales.
const EmptyReportMessage = "Nenhuma venda registrada."

const reportBanner = "============================================"
const reportRule = "--------------------------------------------"

// ReportService renders the textual sales report.
type ReportService struct {
	sales   driven.SaleStore
	printer *message.Printer
	logger  *zap.Logger
}

// NewReportService creates a new report service.
func NewReportService(sales driven.SaleStore, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		sales: sales,
		// Currency is rendered Brazilian style: period for thousands,
		// comma for decimals (1.234,56).
		printer: message.NewPrinter(language.BrazilianPortuguese),
		logger:  logger,
	}
}

// Generate renders the full report, one section per seller with sales,
// alphabetical by seller name.
func (s *ReportService) Generate(ctx context.Context) (string, error) {
	summaries, err := s.sales.Summary(ctx)
	if err != nil {
		s.logger.Warn("report aggregation failed", zap.Error(err))
		return "", err
	}

	if len(summaries) == 0 {
		return EmptyReportMessage + "\n", nil
	}

	var b strings.Builder
	b.WriteString(reportBanner + "\n")
	b.WriteString("            RELATORIO DE VENDAS\n")
	b.WriteString(reportBanner + "\n")

	var grandTotal float64
	for _, sum := range summaries {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Vendedor: %s\n", sum.SellerName)
		b.WriteString(reportRule + "\n")

		b.WriteString("Produtos vendidos:\n")
		for _, p := range sum.Products {
			fmt.Fprintf(&b, "  %-28s x %5d\n", p.ProductName, p.Quantity)
		}

		b.WriteString("Pagamentos:\n")
		for _, p := range sum.Payments {
			fmt.Fprintf(&b, "  %-22s R$ %s\n", p.Method, s.money(p.Amount))
		}

		fmt.Fprintf(&b, "Total do vendedor:      R$ %s\n", s.money(sum.Total))
		grandTotal += sum.Total
	}

	b.WriteString("\n" + reportBanner + "\n")
	fmt.Fprintf(&b, "TOTAL GERAL:            R$ %s\n", s.money(grandTotal))
	b.WriteString(reportBanner + "\n")

	return b.String(), nil
}

// money renders an amount with thousands separator and two decimals in
// the report locale, right-aligned to a fixed column.
func (s *ReportService) money(v float64) string {
	return fmt.Sprintf("%10s", s.printer.Sprintf("%.2f", v))
}
