package main

import (
	"fmt"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `Browse the category tree and add, rename, or delete categories.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"tree"},
		Short:   "Show the category tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			tree, err := client.CategoryTree(ctx, model.CategoryType(categoryType))
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch categories")
			}

			if len(tree) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No categories found."))
				return nil
			}

			for _, parent := range tree {
				fmt.Printf("%s %s %s\n", parent.Icon,
					cli.TitleStyle.Render(parent.Name),
					cli.SubtleStyle.Render(fmt.Sprintf("(%s, ID %d)", parent.Type, parent.ID)))
				for _, child := range parent.Children {
					fmt.Printf("  %s %s %s\n", child.Icon, child.Name,
						cli.SubtleStyle.Render(fmt.Sprintf("(ID %d)", child.ID)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "", "filter by type (expense, income, debt_loan)")

	return cmd
}

func addCategoryCmd() *cobra.Command {
	var (
		categoryType string
		icon         string
		parentID     int64
	)

	cmd := &cobra.Command{
		Use:     "add NAME",
		Aliases: []string{"create"},
		Short:   "Create a category",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			params := api.CategoryParams{
				Type: model.CategoryType(categoryType),
				Name: args[0],
				Icon: icon,
			}
			if parentID != 0 {
				params.ParentID = &parentID
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			category, err := client.CreateCategory(ctx, params)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to create category")
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category '%s' (ID %d)", category.Name, category.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "expense", "category type (expense, income, debt_loan)")
	cmd.Flags().StringVar(&icon, "icon", "", "display icon")
	cmd.Flags().Int64Var(&parentID, "parent", 0, "parent category ID")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		name string
		icon string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			if _, err := client.UpdateCategory(ctx, id, api.CategoryParams{Name: name, Icon: icon}); err != nil {
				writeError(err)
				return fmt.Errorf("failed to update category")
			}

			fmt.Println(cli.FormatSuccess("Category updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			if err := client.DeleteCategory(ctx, id); err != nil {
				writeError(err)
				return fmt.Errorf("failed to delete category")
			}

			fmt.Println(cli.FormatSuccess("Category deleted"))
			return nil
		},
	}
}
