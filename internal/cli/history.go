package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yannix2/medmind/internal/services"
)

func newHistoryCommand(options *rootOptions) *cobra.Command {
	var (
		userRaw string
		fromRaw string
		toRaw   string
		asJSON  bool
		asCSV   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List daily summaries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserIDArg(userRaw)
			if err != nil {
				return err
			}
			rt, err := options.openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			from, to, err := services.ParseHistoryRange(fromRaw, toRaw, rt.config.Location)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrHistoryFromDateInvalid):
					return fmt.Errorf("invalid --from %q (expected YYYY-MM-DD)", fromRaw)
				case errors.Is(err, services.ErrHistoryToDateInvalid):
					return fmt.Errorf("invalid --to %q (expected YYYY-MM-DD)", toRaw)
				default:
					return err
				}
			}

			report, err := rt.health.BuildHistory(userID, from, to, options.now(), rt.config.Location)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			if asCSV {
				return services.WriteHistoryCSV(cmd.OutOrStdout(), report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tMEALS\tFOODS\tKCAL\tNUTRITION\tSTATUS\tACTIVITY\tOVERALL")
			for _, day := range report.Days {
				fmt.Fprintf(out, "%s\t%d\t%d\t%.0f\t%.1f\t%s\t%s\t%.1f\n",
					day.Date,
					day.TotalMeals,
					day.TotalFoods,
					day.TotalCalories,
					day.NutritionScore,
					day.Status,
					formatOptionalScore(day.ActivityScore),
					day.OverallScore,
				)
			}
			fmt.Fprintf(out, "Tracked days: %d of %d\n", report.TrackedDays, len(report.Days))
			fmt.Fprintf(out, "Average nutrition score: %.1f\n", report.AverageNutritionScore)
			fmt.Fprintf(out, "Longest streak: %d\n", report.Streak.Longest)
			return nil
		},
	}

	cmd.Flags().StringVar(&userRaw, "user", "", "User id")
	cmd.Flags().StringVar(&fromRaw, "from", "", "First day (YYYY-MM-DD, default earliest record)")
	cmd.Flags().StringVar(&toRaw, "to", "", "Last day (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Print CSV")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
