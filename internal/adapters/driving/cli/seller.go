package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

var sellerCmd = &cobra.Command{
	Use:   "seller",
	Short: "Manage the seller registry",
}

var sellerAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a seller",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if sellerService == nil {
			return errors.New("seller service not configured")
		}
		seller, err := sellerService.Add(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("seller %q is already registered", strings.Join(args, " "))
			}
			return err
		}
		cmd.Printf("Seller #%d %s registered.\n", seller.ID, seller.Name)
		return nil
	},
}

var sellerRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a seller by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if sellerService == nil {
			return errors.New("seller service not configured")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: seller id must be a number, got %q", domain.ErrInvalidInput, args[0])
		}
		if err := sellerService.Remove(cmd.Context(), id); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("no seller with id %d", id)
			case errors.Is(err, domain.ErrInUse):
				return fmt.Errorf("seller %d still has products or sales; remove those first", id)
			}
			return err
		}
		cmd.Printf("Seller %d removed.\n", id)
		return nil
	},
}

var sellerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered sellers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sellerService == nil {
			return errors.New("seller service not configured")
		}
		sellers, err := sellerService.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(sellers) == 0 {
			cmd.Println("No sellers registered.")
			return nil
		}
		for _, s := range sellers {
			cmd.Printf("%4d  %s\n", s.ID, s.Name)
		}
		return nil
	},
}

func init() {
	sellerCmd.AddCommand(sellerAddCmd)
	sellerCmd.AddCommand(sellerRemoveCmd)
	sellerCmd.AddCommand(sellerListCmd)
	rootCmd.AddCommand(sellerCmd)
}
