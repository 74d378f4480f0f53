// Package cmd - item commands
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fsanano/item-catalog/internal/schema"
)

func newItemCmd(a *app) *cobra.Command {
	itemCmd := &cobra.Command{
		Use:   "item",
		Short: "Create or read catalog items",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	itemCmd.AddCommand(newItemCreateCmd(a))
	itemCmd.AddCommand(newItemGetCmd(a))
	return itemCmd
}

func newItemCreateCmd(a *app) *cobra.Command {
	var (
		id          int
		name        string
		description string
		price       float64
		tax         float64
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an item",
		Long: `Send an item to the catalog. The server validates it and echoes it back
together with the computed total price.

Examples:
  catalogctl item create --id 1 --name Widget --price 9.99
  catalogctl item create --id 2 --name Gadget --description "A gadget" --price 5 --tax 0.75`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := schema.ItemSchema{
				ID:    id,
				Name:  name,
				Price: price,
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}
			if cmd.Flags().Changed("tax") {
				in.Tax = &tax
			}

			a.log.Debug("creating item", zap.Int("id", id), zap.String("name", name))
			out, err := a.client.CreateItem(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	createCmd.Flags().IntVar(&id, "id", 0, "item id")
	createCmd.Flags().StringVar(&name, "name", "", "item name")
	createCmd.Flags().StringVar(&description, "description", "", "item description (omit for none)")
	createCmd.Flags().Float64Var(&price, "price", 0, "base price before tax")
	createCmd.Flags().Float64Var(&tax, "tax", 0, "tax amount (omit for none)")
	createCmd.MarkFlagRequired("id")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("price")

	return createCmd
}

func newItemGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Read an item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("item id must be an integer: %q", args[0])
			}

			out, err := a.client.GetItem(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
