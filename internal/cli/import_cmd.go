package cli

import (
	"fmt"

	"github.com/alexanderramin/rdmanage/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a product with its modules, versions, requirements and tasks",
		Long:  "Import a product from a JSON or YAML document. Nothing is written unless every record is valid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := app.services(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			res, err := svcs.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported product %s [#%d]\n", formatter.Bold(res.Product.Name), res.Product.ID)
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"RECORDS", "COUNT"},
				[][]string{
					{"modules", fmt.Sprint(res.ModuleCount)},
					{"versions", fmt.Sprint(res.VersionCount)},
					{"requirements", fmt.Sprint(res.RequirementCount)},
					{"tasks", fmt.Sprint(res.TaskCount)},
					{"dict items", fmt.Sprint(res.DictCount)},
				},
			))
			return nil
		},
	}
}
