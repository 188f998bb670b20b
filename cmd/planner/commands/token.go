package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/noah-isme/park-maintenance-api/internal/models"
)

func (c *CLI) newTokenCmd() *cobra.Command {
	var subject, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for a planner or employee",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, expires, err := c.tokens.Issue(subject, models.Role(strings.ToUpper(role)))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, token)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expires.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Employee or planner name")
	cmd.Flags().StringVar(&role, "role", string(models.RoleEmployee), "PLANNER or EMPLOYEE")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
