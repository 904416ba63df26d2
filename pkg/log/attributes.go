// Package log defines standard attribute keys for rule-mining operations.
//
// Using these keys keeps every stage of the pipeline (encoding, itemset
// mining, rule generation, pruning, ranking) filterable in the same way.
// Keys follow a hierarchical naming convention (e.g. "mine.level",
// "data.samples").

package log

// Run and Stage Context
const (
	// RunIDKey identifies a single pipeline run. Populated with a UUID.
	RunIDKey = "run.id"

	// StageKey identifies the pipeline stage emitting the record.
	// Standard values are the Stage* constants below.
	StageKey = "arules.stage"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "apriori", "rules", "preprocessing"
	ComponentKey = "arules.component"
)

// Data Shape
const (
	// SamplesKey is the number of observations (transactions).
	SamplesKey = "data.samples"

	// FeaturesKey is the number of categorical attributes.
	FeaturesKey = "data.features"

	// ItemsKey is the number of distinct attribute=value items after encoding.
	ItemsKey = "data.items"

	// ColumnsKey lists column names, e.g. dropped constant columns.
	ColumnsKey = "data.columns"
)

// Mining Parameters and Progress
const (
	// MinSupportKey records the min_support threshold.
	MinSupportKey = "mine.min_support"

	// MinConfidenceKey records the min_confidence threshold.
	MinConfidenceKey = "mine.min_confidence"

	// MaxLenKey records the itemset size cap.
	MaxLenKey = "mine.max_len"

	// MinLiftKey records the optional lift filter (0 means disabled).
	MinLiftKey = "mine.min_lift"

	// LevelKey is the current Apriori level k.
	LevelKey = "mine.level"

	// CandidatesKey is the number of candidates surviving the subset prune at a level.
	CandidatesKey = "mine.candidates"

	// FrequentKey is the number of frequent itemsets retained.
	FrequentKey = "mine.frequent"
)

// Rule Counts
const (
	// RawRulesKey is the number of rules produced by the generator.
	RawRulesKey = "rules.raw"

	// PrunedRulesKey is the number of rules removed as redundant.
	PrunedRulesKey = "rules.pruned"

	// FinalRulesKey is the number of rules in the ranked output.
	FinalRulesKey = "rules.final"

	// GroupsKey is the number of consequent groups examined by the pruner.
	GroupsKey = "rules.groups"
)

// Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// WorkersKey records the worker count used for parallel sections.
	WorkersKey = "perf.workers"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "lower min_support", "lower min_confidence"
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	StageEncode   = "encode"
	StageMine     = "mine"
	StageGenerate = "generate"
	StagePrune    = "prune"
	StageRank     = "rank"

	ErrorInvalidConfig = "INVALID_CONFIG"
	ErrorEmptyData     = "EMPTY_DATA"
	ErrorNoItemsets    = "NO_FREQUENT_ITEMSETS"
	ErrorNoRules       = "NO_RULES"
	ErrorInvariant     = "INVARIANT_VIOLATION"
)
