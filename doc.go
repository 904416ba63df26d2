// Package arules mines categorical datasets for human-readable "if-then"
// association rules.
//
// The pipeline one-hot encodes every attribute=value pair into an item,
// discovers frequent itemsets with a level-wise Apriori search, derives rules
// scored by support, confidence and lift, removes rules implied by a simpler
// rule with the same consequent and at least the same confidence, and ranks
// the survivors by support then antecedent length.
//
// # Quick Start
//
//	table, err := dataset.LoadCSV("mushrooms.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := pipeline.Run(ctx, table, pipeline.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range res.Records {
//	    fmt.Printf("%s → %s (conf=%.3f lift=%.2f)\n",
//	        r.AntecedentString(), r.ConsequentString(), r.Confidence, r.Lift)
//	}
//
// # Packages
//
//   - dataset: tables, CSV I/O, UCI download cache, codebook relabelling
//   - preprocessing: OneHotEncoder
//   - itemset: item vocabulary, bitset itemsets, vertical transactions
//   - apriori: frequent itemset mining
//   - rules: rule generation, redundancy pruning, ranking
//   - pipeline: end-to-end run with structured logging
//   - metrics: support/confidence/lift helpers, Cramér's V
//   - visualization: rule scatter, association heatmap, bar charts
//   - pkg/errors, pkg/log: error taxonomy and structured logging
//   - cmd/arules: command line (mine, plot, fetch, config)
package arules
