package cli

import (
	"context"
	"io"

	"pocketratings/internal/cli/output"
	"pocketratings/internal/delivery/presenter"
	"pocketratings/internal/domain/entity"
	"pocketratings/internal/usecase"

	"github.com/spf13/cobra"
)

func newProductCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "product",
		Aliases: []string{"products"},
		Short:   "Manage products",
	}

	cmd.AddCommand(
		newProductListCommand(opts),
		newProductShowCommand(opts),
		newProductCreateCommand(opts),
		newProductUpdateCommand(opts),
		newProductDeleteCommand(opts),
	)

	return cmd
}

func newProductListCommand(opts *RootOptions) *cobra.Command {
	var (
		category       string
		query          string
		includeDeleted bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with their category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categoryID, err := parseOptionalID("category", category)
			if err != nil {
				return err
			}

			var products usecase.ProductUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				rows, err := products.ListProducts(ctx, entity.ProductFilter{
					CategoryID:     categoryID,
					Query:          query,
					IncludeDeleted: includeDeleted,
				})
				if err != nil {
					return err
				}

				return opts.printer(cmd).Result(presenter.NewProductListing(rows), func(w io.Writer) {
					table := make([][]string, 0, len(rows))
					for _, row := range rows {
						name := row.Name
						if row.DeletedAt != nil {
							name += " (deleted)"
						}
						table = append(table, []string{row.ID.String(), row.Brand, name, row.CategoryName})
					}
					output.Table(w, []string{"ID", "BRAND", "NAME", "CATEGORY"}, table)
				})
			}, &products)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only products of this category id")
	cmd.Flags().StringVarP(&query, "query", "q", "", "match name or brand, ignoring case")
	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", false, "include soft-deleted products")

	return cmd
}

func printProduct(opts *RootOptions, cmd *cobra.Command, product *entity.Product) error {
	return opts.printer(cmd).Result(presenter.NewProduct(product), func(w io.Writer) {
		output.Table(w, []string{"ID", "BRAND", "NAME", "CATEGORY"}, [][]string{
			{product.ID().String(), product.Brand(), product.Name(), product.CategoryID().String()},
		})
	})
}

func newProductShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var products usecase.ProductUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				product, err := products.GetProduct(ctx, id)
				if err != nil {
					return err
				}

				return printProduct(opts, cmd, product)
			}, &products)
		},
	}
}

func newProductCreateCommand(opts *RootOptions) *cobra.Command {
	var input usecase.CreateProductInput
	var category string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categoryID, err := parseID(category)
			if err != nil {
				return err
			}
			input.CategoryID = categoryID
			if err := inputValidator.Validate(&input); err != nil {
				return err
			}

			var products usecase.ProductUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				product, err := products.CreateProduct(ctx, &input)
				if err != nil {
					return err
				}

				return printProduct(opts, cmd, product)
			}, &products)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category id")
	cmd.Flags().StringVar(&input.Brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&input.Name, "name", "", "product name")
	for _, flag := range []string{"category", "brand", "name"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func newProductUpdateCommand(opts *RootOptions) *cobra.Command {
	var category, brand, name string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a product's brand, name or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var input usecase.UpdateProductInput
			if input.CategoryID, err = parseOptionalID("category", category); err != nil {
				return err
			}
			if cmd.Flags().Changed("brand") {
				input.Brand = &brand
			}
			if cmd.Flags().Changed("name") {
				input.Name = &name
			}

			var products usecase.ProductUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				product, err := products.UpdateProduct(ctx, id, &input)
				if err != nil {
					return err
				}

				return printProduct(opts, cmd, product)
			}, &products)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "new category id")
	cmd.Flags().StringVar(&brand, "brand", "", "new brand")
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.MarkFlagsOneRequired("category", "brand", "name")

	return cmd
}

func newProductDeleteCommand(opts *RootOptions) *cobra.Command {
	return newDeleteCommand(opts, "product", func(ctx context.Context, run deleteRun) error {
		var products usecase.ProductUsecase

		return withApp(ctx, opts, func(ctx context.Context) error {
			return products.DeleteProduct(ctx, run.id, run.mode)
		}, &products)
	})
}
