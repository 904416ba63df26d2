package cli

import (
	"fmt"

	"github.com/YuminosukeSato/arules/core/model"
	"github.com/YuminosukeSato/arules/pipeline"
	"github.com/YuminosukeSato/arules/visualization"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	flagOut     string
	flagIn      string
	flagColumn  string
	flagTopN    int
	flagWidthIn float64
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render charts of the data or of mined rules",
}

var plotRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Scatter plot of rules: support vs confidence, sized and coloured by lift",
	Example: `  arules mine --save rules.gob && arules plot rules --in rules.gob --out rules.png
  arules plot rules --min-support 0.4 --out rules.png`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		applyMineFlags(cmd)
		var records []pipeline.Record
		if flagIn != "" {
			if err := model.Load(flagIn, model.KindRules, &records); err != nil {
				return err
			}
		} else {
			if err := cfg.Mining().Validate(); err != nil {
				return err
			}
			res, err := mine(cmd)
			if err != nil {
				return err
			}
			records = res.Records
		}
		if err := visualization.RuleScatter(records, flagOut, size()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %d rules plotted to %s\n", len(records), flagOut)
		return nil
	},
}

var plotHeatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Heatmap of pairwise Cramér's V between columns",
	RunE: func(cmd *cobra.Command, _ []string) error {
		applyDataFlags(cmd)
		t, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}
		if _, err := visualization.AssociationHeatmap(t, flagOut, size()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ heatmap of %d columns written to %s\n", t.NumColumns(), flagOut)
		return nil
	},
}

var plotBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Bar chart of the target column's class counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		applyDataFlags(cmd)
		t, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}
		column := cfg.TargetColumn
		if flagColumn != "" {
			column = flagColumn
		}
		if err := visualization.ClassBalance(t, column, flagOut, size()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ class balance of %s written to %s\n", column, flagOut)
		return nil
	},
}

var plotFeatureCmd = &cobra.Command{
	Use:   "feature",
	Short: "Bar chart of the most frequent values of one column",
	RunE: func(cmd *cobra.Command, _ []string) error {
		applyDataFlags(cmd)
		if flagColumn == "" {
			return fmt.Errorf("--column is required")
		}
		t, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}
		if err := visualization.FeatureDistribution(t, flagColumn, flagTopN, flagOut, size()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ distribution of %s written to %s\n", flagColumn, flagOut)
		return nil
	},
}

func init() {
	plotCmd.PersistentFlags().StringVar(&flagOut, "out", "plot.png", "output image; the extension selects the format")
	plotCmd.PersistentFlags().Float64Var(&flagWidthIn, "width", 0, "image width in inches (height keeps the 4:3 ratio)")

	plotRulesCmd.Flags().StringVar(&flagIn, "in", "", "gob file written by 'mine --save' (mines afresh when empty)")
	plotRulesCmd.Flags().Float64Var(&flagMinSupport, "min-support", 0, "minimum support in (0,1]")
	plotRulesCmd.Flags().Float64Var(&flagMinConfidence, "min-confidence", 0, "minimum confidence in (0,1]")
	plotRulesCmd.Flags().IntVar(&flagMaxLen, "max-len", 0, "maximum itemset size")
	plotRulesCmd.Flags().Float64Var(&flagMinLift, "min-lift", 0, "drop rules with lift below this value (0 disables)")
	addDataFlags(plotRulesCmd)

	plotBalanceCmd.Flags().StringVar(&flagColumn, "column", "", "class column (default: target_column from config)")
	addDataFlags(plotBalanceCmd)

	plotFeatureCmd.Flags().StringVar(&flagColumn, "column", "", "column to chart")
	plotFeatureCmd.Flags().IntVar(&flagTopN, "top", 10, "number of values to show")
	addDataFlags(plotFeatureCmd)

	addDataFlags(plotHeatmapCmd)

	plotCmd.AddCommand(plotRulesCmd, plotHeatmapCmd, plotBalanceCmd, plotFeatureCmd)
	rootCmd.AddCommand(plotCmd)
}

func size() visualization.Size {
	s := visualization.DefaultSize
	if flagWidthIn > 0 {
		s.Width = vg.Length(flagWidthIn) * vg.Inch
		s.Height = s.Width * 3 / 4
	}
	return s
}
