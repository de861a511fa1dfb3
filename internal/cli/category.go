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

func newCategoryCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Manage the category tree",
	}

	cmd.AddCommand(
		newCategoryListCommand(opts),
		newCategoryShowCommand(opts),
		newCategoryCreateCommand(opts),
		newCategoryUpdateCommand(opts),
		newCategoryDeleteCommand(opts),
	)

	return cmd
}

func newCategoryListCommand(opts *RootOptions) *cobra.Command {
	var (
		parent         string
		depth          int
		includeDeleted bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the category tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parentID, err := parseOptionalID("parent", parent)
			if err != nil {
				return err
			}

			var categories usecase.CategoryUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				tree, err := categories.GetTree(ctx, usecase.CategoryTreeQuery{
					ParentID:       parentID,
					Depth:          depth,
					IncludeDeleted: includeDeleted,
				})
				if err != nil {
					return err
				}

				return opts.printer(cmd).Result(presenter.NewCategoryTree(tree), func(w io.Writer) {
					output.Tree(w, tree)
				})
			}, &categories)
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "start from this category instead of the roots")
	cmd.Flags().IntVar(&depth, "depth", 0, "levels to print below the start (0 prints everything)")
	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", false, "include soft-deleted categories")

	return cmd
}

func printCategory(opts *RootOptions, cmd *cobra.Command, category *entity.Category) error {
	return opts.printer(cmd).Result(presenter.NewCategory(category), func(w io.Writer) {
		output.Table(w, []string{"ID", "NAME", "PARENT"}, [][]string{
			{category.ID().String(), category.Name(), optionalID(category.ParentID())},
		})
	})
}

func newCategoryShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var categories usecase.CategoryUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				category, err := categories.GetCategory(ctx, id)
				if err != nil {
					return err
				}

				return printCategory(opts, cmd, category)
			}, &categories)
		},
	}
}

func newCategoryCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		name   string
		parent string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parentID, err := parseOptionalID("parent", parent)
			if err != nil {
				return err
			}

			var categories usecase.CategoryUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				category, err := categories.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: name, ParentID: parentID})
				if err != nil {
					return err
				}

				return printCategory(opts, cmd, category)
			}, &categories)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name")
	cmd.Flags().StringVar(&parent, "parent", "", "parent category id (omit for a root)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryUpdateCommand(opts *RootOptions) *cobra.Command {
	var (
		name   string
		parent string
		toRoot bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a category or move it in the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			input := usecase.UpdateCategoryInput{MoveToRoot: toRoot}
			if input.ParentID, err = parseOptionalID("parent", parent); err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				input.Name = &name
			}

			var categories usecase.CategoryUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				category, err := categories.UpdateCategory(ctx, id, &input)
				if err != nil {
					return err
				}

				return printCategory(opts, cmd, category)
			}, &categories)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&parent, "parent", "", "move below this category id")
	cmd.Flags().BoolVar(&toRoot, "root", false, "move to the top level")
	cmd.MarkFlagsMutuallyExclusive("parent", "root")
	cmd.MarkFlagsOneRequired("name", "parent", "root")

	return cmd
}

func newCategoryDeleteCommand(opts *RootOptions) *cobra.Command {
	return newDeleteCommand(opts, "category", func(ctx context.Context, run deleteRun) error {
		var categories usecase.CategoryUsecase

		return withApp(ctx, opts, func(ctx context.Context) error {
			return categories.DeleteCategory(ctx, run.id, run.mode)
		}, &categories)
	})
}
