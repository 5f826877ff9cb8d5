package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yannix2/medmind/internal/models"
	"github.com/yannix2/medmind/internal/services"
)

func newTargetsCommand() *cobra.Command {
	var (
		age      int
		weightKg float64
		heightCm float64
		sex      string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Calculate daily and per-meal nutrition targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if age < 0 || weightKg < 0 || heightCm < 0 {
				return fmt.Errorf("--age, --weight, and --height must be >= 0")
			}
			profile := &models.UserProfile{
				Age:      age,
				WeightKg: weightKg,
				HeightCm: heightCm,
				Sex:      models.ParseSex(sex),
			}
			daily := services.CalculateDailyTargets(profile)
			meals := make(map[models.MealType]services.NutritionTargets, len(models.AllMealTypes()))
			for _, mealType := range models.AllMealTypes() {
				meals[mealType] = services.MealTargets(daily, mealType)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"daily": daily,
					"meals": meals,
				})
			}

			out := cmd.OutOrStdout()
			if daily.Default {
				fmt.Fprintln(out, "Profile incomplete, using default targets")
			}
			fmt.Fprintln(out, "SCOPE\tKCAL\tPROTEINS\tCARBS\tFATS\tFIBRES\tSUGARS")
			printTargetsRow(cmd, "daily", daily)
			for _, mealType := range models.AllMealTypes() {
				printTargetsRow(cmd, string(mealType), meals[mealType])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().Float64Var(&weightKg, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&heightCm, "height", 0, "Height in cm")
	cmd.Flags().StringVar(&sex, "sex", "", "male or female")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func printTargetsRow(cmd *cobra.Command, scope string, targets services.NutritionTargets) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\n",
		scope,
		targets.Calories,
		targets.Proteins,
		targets.Carbs,
		targets.Fats,
		targets.Fibres,
		targets.Sugars,
	)
}
