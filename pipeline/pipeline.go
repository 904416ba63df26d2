// Package pipeline wires the encoder, the Apriori miner, the rule generator,
// the redundancy pruner and the ranker into one batch run.
//
// Each stage consumes the immutable output of the previous one:
//
//	table → OneHotEncoder → Transactions → apriori.Mine → rules.Generate
//	      → rules.FilterLift → rules.PruneParallel → rules.Rank → []Record
//
// Finding nothing is not an error: Result.Outcome tells "ran and found no
// frequent itemsets" or "found no rules" apart from a successful run.
package pipeline

import (
	"context"
	"time"

	"github.com/YuminosukeSato/arules/apriori"
	"github.com/YuminosukeSato/arules/core/model"
	"github.com/YuminosukeSato/arules/dataset"
	"github.com/YuminosukeSato/arules/itemset"
	"github.com/YuminosukeSato/arules/pkg/errors"
	"github.com/YuminosukeSato/arules/pkg/log"
	"github.com/YuminosukeSato/arules/preprocessing"
	"github.com/YuminosukeSato/arules/rules"
	"github.com/google/uuid"
)

// Outcome classifies a successful run.
type Outcome int

const (
	// OutcomeRules means at least one rule was produced.
	OutcomeRules Outcome = iota
	// OutcomeNoFrequentItemsets means min_support admits no single item.
	OutcomeNoFrequentItemsets
	// OutcomeNoRules means itemsets were frequent but no rule passed the filters.
	OutcomeNoRules
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRules:
		return "rules"
	case OutcomeNoFrequentItemsets:
		return "no_frequent_itemsets"
	case OutcomeNoRules:
		return "no_rules"
	default:
		return "unknown"
	}
}

// Result is the output of Run.
type Result struct {
	RunID   string
	Outcome Outcome

	// Records are the ranked rules with labels attached.
	Records []Record
	// Rules are the same ranked rules in item-id form.
	Rules []rules.Rule

	Itemsets   *apriori.Result
	Vocabulary *itemset.Vocabulary

	Samples     int
	Attributes  int
	RawRules    int
	PrunedRules int
}

type runner struct {
	logger  log.Logger
	encoder model.TableTransformer
}

// Option customises Run.
type Option func(*runner)

// WithLogger sets the logger; the default is log.GetLoggerWithName("pipeline").
func WithLogger(l log.Logger) Option {
	return func(r *runner) { r.logger = l }
}

// WithEncoder replaces the default OneHotEncoder.
func WithEncoder(e model.TableTransformer) Option {
	return func(r *runner) { r.encoder = e }
}

// Run mines ranked, non-redundant association rules from t.
//
// Configuration errors are returned before any computation. Empty input is an
// EmptyInputError. A cancelled ctx stops mining between levels.
func Run(ctx context.Context, t *dataset.Table, cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.GetLoggerWithName("pipeline")
	}
	if r.encoder == nil {
		r.encoder = preprocessing.NewOneHotEncoder()
	}
	return r.run(ctx, t, cfg)
}

func (r *runner) run(ctx context.Context, t *dataset.Table, cfg Config) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	logger := r.logger.With(log.RunIDKey, res.RunID)
	start := time.Now()

	logger.Info("Starting association rules analysis",
		log.MinSupportKey, cfg.MinSupport,
		log.MinConfidenceKey, cfg.MinConfidence,
		log.MaxLenKey, cfg.MaxLen,
		log.MinLiftKey, cfg.MinLift,
	)

	var tx *itemset.Transactions
	err := errors.SafeExecute("pipeline.encode", func() error {
		var err error
		tx, err = r.encoder.FitTransform(t)
		return err
	})
	if err != nil {
		return nil, fail(logger, log.StageEncode, err)
	}
	res.Vocabulary = r.encoder.Vocabulary()
	res.Samples = tx.Len()
	if t != nil {
		res.Attributes = t.NumColumns()
	}
	logger.Info("Data encoded",
		log.SamplesKey, res.Samples,
		log.FeaturesKey, res.Attributes,
		log.ItemsKey, tx.NumItems(),
	)

	err = errors.SafeExecute("pipeline.mine", func() error {
		var err error
		res.Itemsets, err = apriori.Mine(ctx, tx, apriori.Options{
			MinSupport: cfg.MinSupport,
			MaxLen:     cfg.MaxLen,
			Workers:    cfg.Workers,
			Logger:     logger.With(log.StageKey, log.StageMine),
		})
		return err
	})
	if err != nil {
		return nil, fail(logger, log.StageMine, err)
	}
	if res.Itemsets.Empty() {
		res.Outcome = OutcomeNoFrequentItemsets
		errors.Warn(errors.NewNoFrequentItemsetsWarning(cfg.MinSupport, res.Samples))
		logger.Warn("No frequent itemsets found",
			log.ErrorCodeKey, log.ErrorNoItemsets,
			log.SuggestionKey, "lower min_support",
		)
		return res, nil
	}

	var generated []rules.Rule
	err = errors.SafeExecute("pipeline.generate", func() error {
		var err error
		generated, err = rules.Generate(res.Itemsets, cfg.MinConfidence)
		return err
	})
	if err != nil {
		return nil, fail(logger, log.StageGenerate, err)
	}
	generated = rules.FilterLift(generated, cfg.MinLift)
	res.RawRules = len(generated)
	if len(generated) == 0 {
		res.Outcome = OutcomeNoRules
		errors.Warn(errors.NewNoRulesWarning(cfg.MinConfidence, res.Itemsets.Len()))
		logger.Warn("No rules found meeting the criteria",
			log.ErrorCodeKey, log.ErrorNoRules,
			log.FrequentKey, res.Itemsets.Len(),
			log.SuggestionKey, "lower min_confidence",
		)
		return res, nil
	}
	logger.Info("Raw rules generated", log.RawRulesKey, res.RawRules)

	pruned, err := rules.PruneParallel(ctx, generated, cfg.Workers)
	if err != nil {
		return nil, fail(logger, log.StagePrune, err)
	}
	res.PrunedRules = len(generated) - len(pruned)
	if res.PrunedRules > 0 {
		logger.Info("Pruning: removed redundant rules", log.PrunedRulesKey, res.PrunedRules)
	}

	var tiebreak func(a, b rules.Rule) bool
	if cfg.CanonicalOrder {
		tiebreak = rules.CanonicalTiebreak(res.Vocabulary)
	}
	res.Rules = rules.RankBy(pruned, tiebreak)
	res.Records = Records(res.Rules, res.Vocabulary)
	res.Outcome = OutcomeRules

	logger.Info("Final number of rules",
		log.FinalRulesKey, len(res.Records),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return res, nil
}

// fail logs a stage failure once and wraps err as a StageError.
func fail(logger log.Logger, stage string, err error) error {
	fields := []any{err, log.StageKey, stage}
	switch {
	case errors.IsPanic(err):
		fields = append(fields, log.ErrorTypeKey, "PanicError")
	case errors.IsInvariantViolation(err):
		fields = append(fields, log.ErrorCodeKey, log.ErrorInvariant)
	case errors.Is(err, errors.ErrEmptyData):
		fields = append(fields, log.ErrorCodeKey, log.ErrorEmptyData)
	}
	logger.Error("Stage failed", fields...)
	return errors.NewStageError(stage, err)
}
