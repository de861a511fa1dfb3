package cli

import (
	"context"
	"io"
	"strconv"

	"pocketratings/internal/cli/output"
	"pocketratings/internal/delivery/presenter"
	"pocketratings/internal/domain/entity"
	"pocketratings/internal/usecase"

	"github.com/spf13/cobra"
)

func newPurchaseCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "purchase",
		Aliases: []string{"purchases"},
		Short:   "Record and inspect purchases",
	}

	cmd.AddCommand(
		newPurchaseListCommand(opts),
		newPurchaseShowCommand(opts),
		newPurchaseCreateCommand(opts),
		newPurchaseDeleteCommand(opts),
	)

	return cmd
}

func purchaseTable(w io.Writer, list []*entity.Purchase) {
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		at := p.PurchasedAt().Format("2006-01-02 15:04")
		if !p.IsActive() {
			at += " (deleted)"
		}
		rows = append(rows, []string{
			p.ID().String(), p.ProductID().String(), p.LocationID().String(),
			strconv.Itoa(p.Quantity()), p.Price().String(), at,
		})
	}
	output.Table(w, []string{"ID", "PRODUCT", "LOCATION", "QTY", "PRICE", "PURCHASED"}, rows)
}

func newPurchaseListCommand(opts *RootOptions) *cobra.Command {
	var (
		owner          ownerFlags
		product        string
		location       string
		from           string
		to             string
		includeDeleted bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List purchases, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := entity.PurchaseFilter{IncludeDeleted: includeDeleted}
			var err error
			if filter.ProductID, err = parseOptionalID("product", product); err != nil {
				return err
			}
			if filter.LocationID, err = parseOptionalID("location", location); err != nil {
				return err
			}
			if filter.From, err = parseOptionalTime("from", from); err != nil {
				return err
			}
			if filter.To, err = parseOptionalTime("to", to); err != nil {
				return err
			}

			var (
				purchases usecase.PurchaseUsecase
				users     usecase.UserUsecase
			)

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				if owner.set() {
					userID, err := owner.resolve(ctx, users)
					if err != nil {
						return err
					}
					filter.UserID = &userID
				}

				list, err := purchases.ListPurchases(ctx, filter)
				if err != nil {
					return err
				}

				return opts.printer(cmd).Result(presenter.NewPurchases(list), func(w io.Writer) {
					purchaseTable(w, list)
				})
			}, &purchases, &users)
		},
	}

	owner.register(cmd)
	cmd.Flags().StringVar(&product, "product", "", "only purchases of this product id")
	cmd.Flags().StringVar(&location, "location", "", "only purchases at this location id")
	cmd.Flags().StringVar(&from, "from", "", "earliest purchase time (RFC 3339, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "latest purchase time (RFC 3339, inclusive)")
	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", false, "include soft-deleted purchases")

	return cmd
}

func newPurchaseShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var purchases usecase.PurchaseUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				purchase, err := purchases.GetPurchase(ctx, id)
				if err != nil {
					return err
				}

				return opts.printer(cmd).Result(presenter.NewPurchase(purchase), func(w io.Writer) {
					purchaseTable(w, []*entity.Purchase{purchase})
				})
			}, &purchases)
		},
	}
}

func newPurchaseCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		owner    ownerFlags
		input    usecase.CreatePurchaseInput
		product  string
		location string
		at       string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a purchase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if input.ProductID, err = parseID(product); err != nil {
				return err
			}
			if input.LocationID, err = parseID(location); err != nil {
				return err
			}
			if input.PurchasedAt, err = parseOptionalTime("at", at); err != nil {
				return err
			}
			if err := inputValidator.Validate(&input); err != nil {
				return err
			}

			var (
				purchases usecase.PurchaseUsecase
				users     usecase.UserUsecase
			)

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				userID, err := owner.resolve(ctx, users)
				if err != nil {
					return err
				}

				purchase, err := purchases.CreatePurchase(ctx, userID, &input)
				if err != nil {
					return err
				}

				return opts.printer(cmd).Result(presenter.NewPurchase(purchase), func(w io.Writer) {
					purchaseTable(w, []*entity.Purchase{purchase})
				})
			}, &purchases, &users)
		},
	}

	owner.register(cmd)
	cmd.Flags().StringVar(&product, "product", "", "product id")
	cmd.Flags().StringVar(&location, "location", "", "location id")
	cmd.Flags().StringVar(&input.Price, "price", "", "unit price, e.g. 2.49")
	cmd.Flags().IntVar(&input.Quantity, "quantity", 1, "number of units")
	cmd.Flags().StringVar(&at, "at", "", "purchase time (RFC 3339, defaults to now)")
	for _, flag := range []string{"product", "location", "price"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func newPurchaseDeleteCommand(opts *RootOptions) *cobra.Command {
	var owner ownerFlags

	cmd := newDeleteCommand(opts, "purchase", func(ctx context.Context, run deleteRun) error {
		var (
			purchases usecase.PurchaseUsecase
			users     usecase.UserUsecase
		)

		return withApp(ctx, opts, func(ctx context.Context) error {
			if !owner.set() {
				// Acting as the owner of an active purchase.
				purchase, err := purchases.GetPurchase(ctx, run.id)
				if err != nil {
					return err
				}

				return purchases.DeletePurchase(ctx, purchase.UserID(), run.id, run.mode)
			}

			userID, err := owner.resolve(ctx, users)
			if err != nil {
				return err
			}

			return purchases.DeletePurchase(ctx, userID, run.id, run.mode)
		}, &purchases, &users)
	})
	cmd.Long += "\nWithout --user or --email the purchase's owner is used; removing an already\n" +
		"soft-deleted purchase needs the owner named explicitly."
	owner.register(cmd)

	return cmd
}
