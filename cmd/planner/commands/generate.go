package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
	"github.com/noah-isme/park-maintenance-api/internal/models"
	"github.com/noah-isme/park-maintenance-api/internal/service"
)

type generateOptions struct {
	names       []string
	concurrency int
	rain        bool
	temperature int
	description string
}

func (c *CLI) newGenerateCmd() *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and store today's schedule for one or more employees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(opts.names) == 0 {
				return errors.New("at least one --name is required")
			}

			var weather *dto.WeatherInput
			flags := cmd.Flags()
			if flags.Changed("rain") || flags.Changed("temperature") || flags.Changed("weather") {
				weather = &dto.WeatherInput{Temperature: opts.temperature, Description: opts.description, Rain: opts.rain}
			}

			results := make([]*models.DaySchedule, len(opts.names))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(opts.concurrency, 1))
			for i, name := range opts.names {
				g.Go(func() error {
					schedule, err := c.planner.Generate(ctx, dto.GenerateScheduleRequest{EmployeeName: name, Weather: weather})
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					results[i] = schedule
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, schedule := range results {
				summary := service.SummarizeSchedule(schedule)
				_, _ = fmt.Fprintf(out, "%s: %d tasks, %d min work, %d min breaks (%s)\n",
					summary.EmployeeName, summary.TaskCount, summary.TotalDurationMinutes, summary.BreakMinutes, summary.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts.names, "name", "n", nil, "Employee name (repeatable)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 4, "Schedules generated in parallel")
	cmd.Flags().BoolVar(&opts.rain, "rain", false, "Override weather: rain observed")
	cmd.Flags().IntVar(&opts.temperature, "temperature", 15, "Override weather: temperature in Celsius")
	cmd.Flags().StringVar(&opts.description, "weather", "", "Override weather: description")

	return cmd
}
