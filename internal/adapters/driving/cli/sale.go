package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

var (
	saleSellerID int64
	saleItems    []string
	salePayments []string
	saleClearYes bool
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Register sales and manage the sales history",
}

var saleRegisterCmd = &cobra.Command{
	Use:   "register --seller [id] --item CODE:QTY:PRICE --pay METHOD:AMOUNT",
	Short: "Register a sale with its items and payments atomically",
	Long: `Registers a sale for a seller. Repeat --item for each line and --pay
for each payment; payments must add up to the item total.

Example:
  vendas sale register --seller 1 \
    --item PROD-0001:2:7.50 --item PROD-0002:1:10.00 \
    --pay cash:15.00 --pay pix:10.00`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if saleService == nil {
			return errors.New("sale service not configured")
		}
		draft := domain.SaleDraft{SellerID: saleSellerID}
		for _, spec := range saleItems {
			item, err := parseItemSpec(spec)
			if err != nil {
				return err
			}
			draft.Items = append(draft.Items, item)
		}
		for _, spec := range salePayments {
			payment, err := parsePaymentSpec(spec)
			if err != nil {
				return err
			}
			draft.Payments = append(draft.Payments, payment)
		}
		sale, err := saleService.Register(cmd.Context(), draft)
		if err != nil {
			if errors.Is(err, domain.ErrPaymentMismatch) {
				return fmt.Errorf("payments (R$ %.2f) do not match the item total (R$ %.2f)",
					draft.PaymentsTotal(), draft.ItemsTotal())
			}
			return err
		}
		cmd.Printf("Sale #%d registered: total R$ %.2f, reference %s\n",
			sale.ID, sale.Total, sale.Reference)
		return nil
	},
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered sales, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if saleService == nil {
			return errors.New("sale service not configured")
		}
		sales, err := saleService.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(sales) == 0 {
			cmd.Println("No sales registered.")
			return nil
		}
		for _, s := range sales {
			cmd.Printf("%4d  %s  %-20s R$ %10.2f  %s\n",
				s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.SellerName, s.Total, s.Reference)
		}
		return nil
	},
}

var saleClearCmd = &cobra.Command{
	Use:   "clear --yes",
	Short: "Delete the whole sales history, keeping sellers and products",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if saleService == nil {
			return errors.New("sale service not configured")
		}
		if !saleClearYes {
			return errors.New("refusing to clear the sales history without --yes")
		}
		if err := saleService.ClearHistory(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("Sales history cleared.")
		return nil
	},
}

// parseItemSpec parses a CODE:QTY:PRICE item flag.
func parseItemSpec(spec string) (domain.SaleItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return domain.SaleItem{}, fmt.Errorf("%w: item must be CODE:QTY:PRICE, got %q",
			domain.ErrInvalidInput, spec)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.SaleItem{}, fmt.Errorf("%w: item quantity must be a number, got %q",
			domain.ErrInvalidInput, parts[1])
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return domain.SaleItem{}, fmt.Errorf("%w: item price must be a number, got %q",
			domain.ErrInvalidInput, parts[2])
	}
	return domain.SaleItem{
		ProductCode: domain.NormalizeProductCode(parts[0]),
		Quantity:    qty,
		UnitPrice:   price,
	}, nil
}

// parsePaymentSpec parses a METHOD:AMOUNT payment flag.
func parsePaymentSpec(spec string) (domain.Payment, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return domain.Payment{}, fmt.Errorf("%w: payment must be METHOD:AMOUNT, got %q",
			domain.ErrInvalidInput, spec)
	}
	method := domain.PaymentMethod(strings.ToLower(strings.TrimSpace(parts[0])))
	if !method.Valid() {
		return domain.Payment{}, fmt.Errorf("%w: unknown payment method %q",
			domain.ErrInvalidInput, parts[0])
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("%w: payment amount must be a number, got %q",
			domain.ErrInvalidInput, parts[1])
	}
	return domain.Payment{Method: method, Amount: amount}, nil
}

func init() {
	saleRegisterCmd.Flags().Int64Var(&saleSellerID, "seller", 0, "id of the seller closing the sale")
	saleRegisterCmd.Flags().StringArrayVar(&saleItems, "item", nil, "sale line as CODE:QTY:PRICE (repeatable)")
	saleRegisterCmd.Flags().StringArrayVar(&salePayments, "pay", nil, "payment as METHOD:AMOUNT (repeatable)")
	saleClearCmd.Flags().BoolVar(&saleClearYes, "yes", false, "confirm clearing the history")

	saleCmd.AddCommand(saleRegisterCmd)
	saleCmd.AddCommand(saleListCmd)
	saleCmd.AddCommand(saleClearCmd)
	rootCmd.AddCommand(saleCmd)
}
