package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/yannix2/medmind/internal/i18n"
	"github.com/yannix2/medmind/internal/services"
)

func newSummaryCommand(options *rootOptions) *cobra.Command {
	var (
		userRaw  string
		dateRaw  string
		language string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the scored overview of one day",
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

			var day time.Time
			if dateRaw != "" {
				day, err = services.ParseDay(dateRaw, rt.config.Location)
				if err != nil {
					return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", dateRaw)
				}
			}

			overview, err := rt.health.BuildDailyOverview(userID, day, options.now(), rt.config.Location)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), overview)
			}

			i18nManager, err := i18n.NewManager(rt.config.DefaultLanguage, rt.config.LocalesDir)
			if err != nil {
				return err
			}
			translate := i18nManager.Translator(language)
			feedback := overview.Feedback.Localize(translate)

			out := cmd.OutOrStdout()
			summary := overview.Summary
			fmt.Fprintf(out, "Date: %s\n", overview.Date)
			fmt.Fprintf(out, "Meals: %d  Foods: %d\n", summary.TotalMeals, summary.TotalFoods)
			fmt.Fprintf(out, "Calories: %.0f / %.0f kcal (%.1f%%)\n", summary.TotalCalories, overview.Targets.Calories, overview.Progress.Calories)
			fmt.Fprintf(out, "Proteins: %.1f g  Carbs: %.1f g  Fats: %.1f g\n", summary.Totals.Proteins, summary.Totals.Carbs, summary.Totals.Fats)
			fmt.Fprintf(out, "Nutrition: %.1f (%s)\n", summary.NutritionScore, translate(summary.Status.MessageKey()))
			if overview.Activity != nil {
				fmt.Fprintf(out, "Activity: %.1f (%s)\n", overview.Activity.Score, translate(overview.Activity.Status.MessageKey()))
			} else {
				fmt.Fprintln(out, "Activity: -")
			}
			fmt.Fprintf(out, "Overall: %.1f\n", overview.OverallScore)
			fmt.Fprintf(out, "Streak: %d (current %d)\n", overview.Streak.Longest, overview.Streak.Trailing)
			fmt.Fprintf(out, "%s %s\n", feedback.Emoji, feedback.Headline)
			fmt.Fprintln(out, feedback.Subtext)
			for _, tip := range feedback.Tips {
				fmt.Fprintf(out, "- %s\n", tip)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userRaw, "user", "", "User id")
	cmd.Flags().StringVar(&dateRaw, "date", "", "Day to summarize (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&language, "lang", "", "Feedback language")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
