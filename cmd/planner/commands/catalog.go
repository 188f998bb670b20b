package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
)

func (c *CLI) newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the maintenance task catalog",
	}
	cmd.AddCommand(c.newCatalogImportCmd())
	return cmd
}

func (c *CLI) newCatalogImportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: `Add or replace tasks from a JSON file ({"tasks": [...]}); "-" reads stdin`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var src io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open catalog file: %w", err)
				}
				defer f.Close()
				src = f
			}

			var req dto.ImportCatalogRequest
			if err := json.NewDecoder(src).Decode(&req); err != nil {
				return fmt.Errorf("decode catalog file: %w", err)
			}
			result, err := c.catalog.Import(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d tasks, catalog holds %d\n", result.Imported, result.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
