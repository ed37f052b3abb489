package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/rdmanage/internal/cli/formatter"
	"github.com/alexanderramin/rdmanage/internal/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// scopeFlags binds --product and --module to a repository.ScopeFilter.
type scopeFlags struct {
	product int64
	module  int64
}

func (s *scopeFlags) register(fs *pflag.FlagSet) {
	fs.Int64Var(&s.product, "product", 0, "Only items of this product ID")
	fs.Int64Var(&s.module, "module", 0, "Only items of this module ID")
}

func (s *scopeFlags) filter() repository.ScopeFilter {
	var f repository.ScopeFilter
	if s.product > 0 {
		f.ProductID = &s.product
	}
	if s.module > 0 {
		f.ModuleID = &s.module
	}
	return f
}

func printEmpty(cmd *cobra.Command, what string) {
	fmt.Fprintf(cmd.OutOrStdout(), "No %s found.\n", what)
}

func newProductCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "product", Short: "Inspect products"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, err := app.services(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			products, err := svcs.Products.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(products) == 0 {
				printEmpty(cmd, "products")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProducts(products))
			return nil
		},
	})
	return cmd
}

func newModuleCmd(app *App) *cobra.Command {
	var productID int64

	tree := &cobra.Command{
		Use:   "tree",
		Short: "Show a product's module hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, err := app.services(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			product, err := svcs.Products.GetByID(cmd.Context(), productID)
			if err != nil {
				return fmt.Errorf("product %d: %w", productID, err)
			}
			modules, err := svcs.Modules.List(cmd.Context(), repository.ModuleFilter{ProductID: &productID})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatModuleTree(product, modules))
			return nil
		},
	}
	tree.Flags().Int64Var(&productID, "product", 0, "Product ID")
	_ = tree.MarkFlagRequired("product")

	cmd := &cobra.Command{Use: "module", Short: "Inspect product modules"}
	cmd.AddCommand(tree)
	return cmd
}

func newVersionCmd(app *App) *cobra.Command {
	var scope scopeFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, err := app.services(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			versions, err := svcs.Versions.List(cmd.Context(), scope.filter())
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				printEmpty(cmd, "versions")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatVersions(versions))
			return nil
		},
	}
	scope.register(list.Flags())

	cmd := &cobra.Command{Use: "version", Short: "Inspect versions"}
	cmd.AddCommand(list)
	return cmd
}

func newRequirementCmd(app *App) *cobra.Command {
	var scope scopeFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List requirements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, err := app.services(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			reqs, err := svcs.Requirements.List(cmd.Context(), scope.filter())
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				printEmpty(cmd, "requirements")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRequirements(reqs, time.Now()))
			return nil
		},
	}
	scope.register(list.Flags())

	cmd := &cobra.Command{Use: "requirement", Short: "Inspect requirements"}
	cmd.AddCommand(list)
	return cmd
}

func newTaskCmd(app *App) *cobra.Command {
	var scope scopeFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, err := app.services(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			tasks, err := svcs.Tasks.List(cmd.Context(), scope.filter())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				printEmpty(cmd, "tasks")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(tasks, time.Now()))
			return nil
		},
	}
	scope.register(list.Flags())

	cmd := &cobra.Command{Use: "task", Short: "Inspect tasks"}
	cmd.AddCommand(list)
	return cmd
}

func newDictCmd(app *App) *cobra.Command {
	var dictType string
	list := &cobra.Command{
		Use:   "list",
		Short: "List dictionary items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, err := app.services(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			items, err := svcs.Dicts.List(cmd.Context(), dictType)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				printEmpty(cmd, "dictionary items")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDicts(items))
			return nil
		},
	}
	list.Flags().StringVar(&dictType, "type", "", "Only items of this dictionary type")

	cmd := &cobra.Command{Use: "dict", Short: "Inspect dictionary items"}
	cmd.AddCommand(list)
	return cmd
}
