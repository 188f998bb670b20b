// Package commands implements the planner command line interface.
package commands

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
	"github.com/noah-isme/park-maintenance-api/internal/models"
)

// Planner generates day schedules.
type Planner interface {
	Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*models.DaySchedule, error)
}

// TokenIssuer mints access tokens.
type TokenIssuer interface {
	Issue(subject string, role models.Role) (string, time.Time, error)
}

// CatalogImporter loads maintenance tasks into the catalog.
type CatalogImporter interface {
	Import(ctx context.Context, req dto.ImportCatalogRequest) (*dto.ImportCatalogResponse, error)
}

// CLI represents the planner command line interface.
type CLI struct {
	planner Planner
	tokens  TokenIssuer
	catalog CatalogImporter
	rootCmd *cobra.Command
}

// New creates a CLI backed by the given planner, token issuer and catalog.
func New(planner Planner, tokens TokenIssuer, catalog CatalogImporter) *CLI {
	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "Daily maintenance schedules for park staff",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		planner: planner,
		tokens:  tokens,
		catalog: catalog,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newTokenCmd())
	rootCmd.AddCommand(c.newCatalogCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
