package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/YuminosukeSato/arules/core/model"
	"github.com/YuminosukeSato/arules/pipeline"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	flagMinSupport    float64
	flagMinConfidence float64
	flagMaxLen        int
	flagMinLift       float64
	flagWorkers       int
	flagCanonical     bool
	flagFormat        string
	flagSave          string
	flagTop           int
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine ranked, non-redundant association rules",
	Example: `  arules mine --min-support 0.3 --min-confidence 0.7 --max-len 3
  arules mine --data ./mushrooms.csv --codebook none --format csv > rules.csv
  arules mine --min-lift 1.2 --save rules.gob`,
	RunE: runMine,
}

func init() {
	f := mineCmd.Flags()
	f.Float64Var(&flagMinSupport, "min-support", 0, "minimum support in (0,1]")
	f.Float64Var(&flagMinConfidence, "min-confidence", 0, "minimum confidence in (0,1]")
	f.IntVar(&flagMaxLen, "max-len", 0, "maximum itemset size")
	f.Float64Var(&flagMinLift, "min-lift", 0, "drop rules with lift below this value (0 disables)")
	f.IntVar(&flagWorkers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	f.BoolVar(&flagCanonical, "canonical", false, "break ranking ties by rule labels")
	f.StringVar(&flagFormat, "format", "", "output format: table, csv, json")
	f.StringVar(&flagSave, "save", "", "also save the ranked records to this gob file")
	f.IntVar(&flagTop, "top", 0, "print only the first N rules (0 prints all)")
	addDataFlags(mineCmd)
	rootCmd.AddCommand(mineCmd)
}

func applyMineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	if f.Changed("min-support") {
		cfg.MinSupport = flagMinSupport
	}
	if f.Changed("min-confidence") {
		cfg.MinConfidence = flagMinConfidence
	}
	if f.Changed("max-len") {
		cfg.MaxLen = flagMaxLen
	}
	if f.Changed("min-lift") {
		cfg.MinLift = flagMinLift
	}
	if f.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if f.Changed("canonical") {
		cfg.CanonicalOrder = flagCanonical
	}
	if f.Changed("format") {
		cfg.Output = flagFormat
	}
	applyDataFlags(cmd)
}

func runMine(cmd *cobra.Command, _ []string) error {
	applyMineFlags(cmd)
	// 計算前に設定を検証する
	if err := cfg.Mining().Validate(); err != nil {
		return err
	}
	switch cfg.Output {
	case "", "table", "csv", "json":
	default:
		return fmt.Errorf("unknown output format %q (want table, csv or json)", cfg.Output)
	}
	res, err := mine(cmd)
	if err != nil {
		return err
	}

	if flagSave != "" {
		if err := model.Save(flagSave, model.KindRules, res.Records); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if res.Outcome != pipeline.OutcomeRules {
		fmt.Fprintf(out, "No rules (%s). Try lowering the thresholds.\n", res.Outcome)
		return nil
	}
	records := res.Records
	if flagTop > 0 && flagTop < len(records) {
		records = records[:flagTop]
	}
	return writeRecords(out, cfg.Output, records)
}

func mine(cmd *cobra.Command) (*pipeline.Result, error) {
	t, err := loadTable(cmd.Context())
	if err != nil {
		return nil, err
	}
	return pipeline.Run(cmd.Context(), t, cfg.Mining())
}

func writeRecords(w io.Writer, format string, records []pipeline.Record) error {
	switch format {
	case "", "table":
		renderTable(w, records)
		return nil
	case "csv":
		return pipeline.WriteRecordsCSV(w, records)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("unknown output format %q (want table, csv or json)", format)
	}
}

func renderTable(w io.Writer, records []pipeline.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Antecedents", "Consequents", "Support", "Confidence", "Lift"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, r := range records {
		table.Append([]string{
			fmt.Sprint(i + 1),
			strings.Join(r.Antecedents, "\n"),
			r.ConsequentString(),
			fmt.Sprintf("%.3f", r.Support),
			fmt.Sprintf("%.3f", r.Confidence),
			fmt.Sprintf("%.3f", r.Lift),
		})
	}
	table.Render()
}
