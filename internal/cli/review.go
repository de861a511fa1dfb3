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

func newReviewCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "review",
		Aliases: []string{"reviews"},
		Short:   "Rate products",
	}

	cmd.AddCommand(
		newReviewListCommand(opts),
		newReviewShowCommand(opts),
		newReviewCreateCommand(opts),
		newReviewUpdateCommand(opts),
		newReviewDeleteCommand(opts),
	)

	return cmd
}

func reviewText(r *entity.Review) string {
	if text := r.Text(); text != nil {
		return *text
	}

	return output.Muted("-")
}

func printReview(opts *RootOptions, cmd *cobra.Command, r *entity.Review) error {
	return opts.printer(cmd).Result(presenter.NewReview(r), func(w io.Writer) {
		output.Table(w, []string{"ID", "PRODUCT", "USER", "RATING", "TEXT"}, [][]string{
			{r.ID().String(), r.ProductID().String(), r.UserID().String(), r.Rating().String(), reviewText(r)},
		})
	})
}

func newReviewListCommand(opts *RootOptions) *cobra.Command {
	var (
		owner          ownerFlags
		product        string
		includeDeleted bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reviews with product and author, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			productID, err := parseOptionalID("product", product)
			if err != nil {
				return err
			}

			var (
				reviews usecase.ReviewUsecase
				users   usecase.UserUsecase
			)

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				filter := entity.ReviewFilter{ProductID: productID, IncludeDeleted: includeDeleted}
				if owner.set() {
					userID, err := owner.resolve(ctx, users)
					if err != nil {
						return err
					}
					filter.UserID = &userID
				}

				rows, err := reviews.ListReviews(ctx, filter)
				if err != nil {
					return err
				}

				return opts.printer(cmd).Result(presenter.NewReviewListing(rows), func(w io.Writer) {
					table := make([][]string, 0, len(rows))
					for _, r := range rows {
						product := r.ProductBrand + " " + r.ProductName
						if r.DeletedAt != nil {
							product += " (deleted)"
						}
						table = append(table, []string{r.ID.String(), product, r.UserName, r.Rating.String()})
					}
					output.Table(w, []string{"ID", "PRODUCT", "USER", "RATING"}, table)
				})
			}, &reviews, &users)
		},
	}

	owner.register(cmd)
	cmd.Flags().StringVar(&product, "product", "", "only reviews of this product id")
	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", false, "include soft-deleted reviews")

	return cmd
}

func newReviewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var reviews usecase.ReviewUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				review, err := reviews.GetReview(ctx, id)
				if err != nil {
					return err
				}

				return printReview(opts, cmd, review)
			}, &reviews)
		},
	}
}

func newReviewCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		owner   ownerFlags
		input   usecase.CreateReviewInput
		product string
		text    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Review a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if input.ProductID, err = parseID(product); err != nil {
				return err
			}
			if cmd.Flags().Changed("text") {
				input.Text = &text
			}
			if err := inputValidator.Validate(&input); err != nil {
				return err
			}

			var (
				reviews usecase.ReviewUsecase
				users   usecase.UserUsecase
			)

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				userID, err := owner.resolve(ctx, users)
				if err != nil {
					return err
				}

				review, err := reviews.CreateReview(ctx, userID, &input)
				if err != nil {
					return err
				}

				return printReview(opts, cmd, review)
			}, &reviews, &users)
		},
	}

	owner.register(cmd)
	cmd.Flags().StringVar(&product, "product", "", "product id")
	cmd.Flags().StringVar(&input.Rating, "rating", "", "rating from 1 to 5, e.g. 4.5")
	cmd.Flags().StringVar(&text, "text", "", "review text")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func newReviewUpdateCommand(opts *RootOptions) *cobra.Command {
	var rating, text string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the rating or text of a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var input usecase.UpdateReviewInput
			if cmd.Flags().Changed("rating") {
				input.Rating = &rating
			}
			if cmd.Flags().Changed("text") {
				input.Text = &text
			}

			var reviews usecase.ReviewUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				current, err := reviews.GetReview(ctx, id)
				if err != nil {
					return err
				}

				review, err := reviews.UpdateReview(ctx, current.UserID(), id, &input)
				if err != nil {
					return err
				}

				return printReview(opts, cmd, review)
			}, &reviews)
		},
	}

	cmd.Flags().StringVar(&rating, "rating", "", "new rating from 1 to 5")
	cmd.Flags().StringVar(&text, "text", "", "new review text (empty clears it)")
	cmd.MarkFlagsOneRequired("rating", "text")

	return cmd
}

func newReviewDeleteCommand(opts *RootOptions) *cobra.Command {
	var owner ownerFlags

	cmd := newDeleteCommand(opts, "review", func(ctx context.Context, run deleteRun) error {
		var (
			reviews usecase.ReviewUsecase
			users   usecase.UserUsecase
		)

		return withApp(ctx, opts, func(ctx context.Context) error {
			if !owner.set() {
				review, err := reviews.GetReview(ctx, run.id)
				if err != nil {
					return err
				}

				return reviews.DeleteReview(ctx, review.UserID(), run.id, run.mode)
			}

			userID, err := owner.resolve(ctx, users)
			if err != nil {
				return err
			}

			return reviews.DeleteReview(ctx, userID, run.id, run.mode)
		}, &reviews, &users)
	})
	cmd.Long += "\nWithout --user or --email the review's author is used; removing an already\n" +
		"soft-deleted review needs the author named explicitly."
	owner.register(cmd)

	return cmd
}
