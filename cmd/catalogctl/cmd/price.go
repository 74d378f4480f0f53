// Package cmd - price command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"fsanano/item-catalog/internal/model"
)

func newPriceCmd() *cobra.Command {
	var price, tax string

	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Compute an item's total price locally",
		Long: `Compute price plus tax without calling the API.
A tax of zero is treated the same as no tax.

Examples:
  catalogctl price --price 9.99
  catalogctl price --price 9.99 --tax 2.50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", price, err)
			}

			var t decimal.NullDecimal
			if cmd.Flags().Changed("tax") {
				d, err := decimal.NewFromString(tax)
				if err != nil {
					return fmt.Errorf("invalid tax %q: %w", tax, err)
				}
				t = decimal.NewNullDecimal(d)
			}

			item := model.NewItem("", nil, p, t)
			fmt.Fprintln(cmd.OutOrStdout(), item.TotalPrice().String())
			return nil
		},
	}

	priceCmd.Flags().StringVar(&price, "price", "", "base price before tax")
	priceCmd.Flags().StringVar(&tax, "tax", "", "tax amount (omit for none)")
	priceCmd.MarkFlagRequired("price")

	return priceCmd
}
