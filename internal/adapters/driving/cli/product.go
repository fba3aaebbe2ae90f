package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

var productSellerID int64

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
}

var productAddCmd = &cobra.Command{
	Use:   "add [name] [price] --seller [id]",
	Short: "Register a product and print its generated code",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if productService == nil {
			return errors.New("product service not configured")
		}
		priceArg := args[len(args)-1]
		price, err := strconv.ParseFloat(priceArg, 64)
		if err != nil {
			return fmt.Errorf("%w: price must be a number, got %q", domain.ErrInvalidInput, priceArg)
		}
		name := strings.Join(args[:len(args)-1], " ")
		product, err := productService.Add(cmd.Context(), name, price, productSellerID)
		if err != nil {
			return err
		}
		cmd.Printf("Product %s (%s, R$ %.2f) registered for seller %d.\n",
			product.Code, product.Name, product.Price, product.SellerID)
		return nil
	},
}

var productRemoveCmd = &cobra.Command{
	Use:   "remove [code]",
	Short: "Remove a product by code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if productService == nil {
			return errors.New("product service not configured")
		}
		code := domain.NormalizeProductCode(args[0])
		if err := productService.Remove(cmd.Context(), code); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("no product with code %s", code)
			case errors.Is(err, domain.ErrInUse):
				return fmt.Errorf("product %s appears in registered sales; clear the history first", code)
			}
			return err
		}
		cmd.Printf("Product %s removed.\n", code)
		return nil
	},
}

var productGetCmd = &cobra.Command{
	Use:   "get [code]",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if productService == nil {
			return errors.New("product service not configured")
		}
		product, err := productService.Get(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("no product with code %s", domain.NormalizeProductCode(args[0]))
			}
			return err
		}
		cmd.Printf("%s  %-28s R$ %8.2f  seller %d\n",
			product.Code, product.Name, product.Price, product.SellerID)
		return nil
	},
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog, optionally filtered by seller",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if productService == nil {
			return errors.New("product service not configured")
		}
		if productSellerID > 0 {
			products, err := productService.ListBySeller(cmd.Context(), productSellerID)
			if err != nil {
				return err
			}
			if len(products) == 0 {
				cmd.Printf("No products for seller %d.\n", productSellerID)
				return nil
			}
			for _, p := range products {
				cmd.Printf("%s  %-28s R$ %8.2f\n", p.Code, p.Name, p.Price)
			}
			return nil
		}
		listings, err := productService.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(listings) == 0 {
			cmd.Println("No products registered.")
			return nil
		}
		for _, l := range listings {
			cmd.Printf("%s  %-28s R$ %8.2f  %s\n", l.Code, l.Name, l.Price, l.SellerName)
		}
		return nil
	},
}

func init() {
	productAddCmd.Flags().Int64Var(&productSellerID, "seller", 0, "id of the seller who owns the product")
	productListCmd.Flags().Int64Var(&productSellerID, "seller", 0, "only list this seller's products")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productRemoveCmd)
	productCmd.AddCommand(productGetCmd)
	productCmd.AddCommand(productListCmd)
	rootCmd.AddCommand(productCmd)
}
