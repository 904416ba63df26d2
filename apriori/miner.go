package apriori

import (
	"context"
	"time"

	"github.com/YuminosukeSato/arules/core/parallel"
	"github.com/YuminosukeSato/arules/itemset"
	"github.com/YuminosukeSato/arules/metrics"
	"github.com/YuminosukeSato/arules/pkg/errors"
	"github.com/YuminosukeSato/arules/pkg/log"
	"github.com/bits-and-blooms/bitset"
)

// DefaultParallelThreshold is the candidate count below which a level is counted sequentially.
const DefaultParallelThreshold = 256

// Options configures a mining run.
type Options struct {
	// MinSupport is the minimum fraction of transactions, in (0, 1].
	MinSupport float64
	// MaxLen caps itemset size; must be at least 1.
	MaxLen int
	// Workers bounds support-counting goroutines; 0 means runtime.NumCPU().
	Workers int
	// ParallelThreshold defaults to DefaultParallelThreshold.
	ParallelThreshold int
	// Logger defaults to log.GetLoggerWithName("apriori").
	Logger log.Logger
}

// Validate checks the thresholds.
func (o Options) Validate() error {
	if !errors.InOpenUnitInterval(o.MinSupport) {
		return errors.NewConfigurationError("min_support", "must be in (0, 1]", o.MinSupport)
	}
	if o.MaxLen < 1 {
		return errors.NewConfigurationError("max_len", "must be at least 1", o.MaxLen)
	}
	if o.Workers < 0 {
		return errors.NewConfigurationError("workers", "must not be negative", o.Workers)
	}
	return nil
}

// node is a frequent itemset of the level being extended, with its tid-list.
type node struct {
	set   itemset.Itemset
	tids  *bitset.BitSet
	count int
}

// candidate joins prev[left] with the last item of prev[right].
type candidate struct {
	set         itemset.Itemset
	left, right int
}

// Miner runs Apriori over encoded transactions. It holds no state between runs.
type Miner struct {
	opts   Options
	logger log.Logger
}

// NewMiner validates opts and returns a Miner.
func NewMiner(opts Options) (*Miner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.ParallelThreshold <= 0 {
		opts.ParallelThreshold = DefaultParallelThreshold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.GetLoggerWithName("apriori")
	}
	return &Miner{opts: opts, logger: logger}, nil
}

// Mine is shorthand for NewMiner(opts) followed by Miner.Mine.
func Mine(ctx context.Context, tx *itemset.Transactions, opts Options) (*Result, error) {
	m, err := NewMiner(opts)
	if err != nil {
		return nil, err
	}
	return m.Mine(ctx, tx)
}

// Mine returns every itemset of at most MaxLen items whose support reaches MinSupport.
//
// An empty Result with a nil error means no single item was frequent.
// If ctx is cancelled between levels, the levels completed so far are
// returned together with the context error; they are valid on their own.
func (m *Miner) Mine(ctx context.Context, tx *itemset.Transactions) (*Result, error) {
	if tx == nil || tx.Len() == 0 || tx.NumItems() == 0 {
		rows, items := 0, 0
		if tx != nil {
			rows, items = tx.Len(), tx.NumItems()
		}
		return nil, errors.NewEmptyInputError("apriori.Mine", rows, items)
	}

	start := time.Now()
	res := newResult(tx.Len())

	level := m.firstLevel(tx)
	res.addLevel(frequentOf(level, tx.Len()))
	m.logger.Debug("Level mined",
		log.LevelKey, 1,
		log.CandidatesKey, tx.NumItems(),
		log.FrequentKey, len(level),
	)

	for k := 2; k <= m.opts.MaxLen && len(level) > 0; k++ {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "apriori: stopped before level %d", k)
		}
		cands := m.join(tx, level, k)
		level = m.count(tx, level, cands)
		if len(level) == 0 {
			break
		}
		res.addLevel(frequentOf(level, tx.Len()))
		m.logger.Debug("Level mined",
			log.LevelKey, k,
			log.CandidatesKey, len(cands),
			log.FrequentKey, len(level),
		)
	}

	m.logger.Info("Frequent itemsets mined",
		log.MinSupportKey, m.opts.MinSupport,
		log.MaxLenKey, m.opts.MaxLen,
		log.SamplesKey, tx.Len(),
		log.FrequentKey, res.Len(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (m *Miner) frequent(count, n int) bool {
	return float64(count)/float64(n) >= m.opts.MinSupport
}

func (m *Miner) firstLevel(tx *itemset.Transactions) []node {
	var level []node
	for id := 0; id < tx.NumItems(); id++ {
		item := itemset.ItemID(id)
		c := tx.ItemCount(item)
		if !m.frequent(c, tx.Len()) {
			continue
		}
		level = append(level, node{set: itemset.New(item), tids: tx.TIDs(item), count: c})
	}
	return level
}

// join builds the size-k candidates from the lexicographically sorted
// frequent (k-1)-itemsets in prev and applies the subset prune.
func (m *Miner) join(tx *itemset.Transactions, prev []node, k int) []candidate {
	known := make(map[string]struct{}, len(prev))
	for _, p := range prev {
		known[p.set.Key()] = struct{}{}
	}

	var cands []candidate
	for i := range prev {
		for j := i + 1; j < len(prev) && prev[j].set.SharesPrefix(prev[i].set, k-2); j++ {
			last := prev[j].set.Last()
			// values of one attribute never co-occur
			if tx.SameAttribute(prev[i].set.Last(), last) {
				continue
			}
			set := prev[i].set.With(last)
			if !subsetsFrequent(set, known) {
				continue
			}
			cands = append(cands, candidate{set: set, left: i, right: j})
		}
	}
	return cands
}

// subsetsFrequent checks the (k-1)-subsets of set other than the two join
// parents, which are frequent by construction.
func subsetsFrequent(set itemset.Itemset, known map[string]struct{}) bool {
	for d := 0; d < set.Len()-2; d++ {
		if _, ok := known[set.Without(d).Key()]; !ok {
			return false
		}
	}
	return true
}

// count scores candidates by intersecting their parents' tid-lists. Each
// candidate is counted independently, so ranges run in parallel.
func (m *Miner) count(tx *itemset.Transactions, prev []node, cands []candidate) []node {
	counts := make([]int, len(cands))
	tids := make([]*bitset.BitSet, len(cands))
	n := tx.Len()

	parallel.ParallelizeWithThreshold(len(cands), m.opts.ParallelThreshold, m.opts.Workers, func(start, end int) {
		for c := start; c < end; c++ {
			left, right := prev[cands[c].left].tids, prev[cands[c].right].tids
			counts[c] = int(left.IntersectionCardinality(right))
			if m.frequent(counts[c], n) {
				tids[c] = left.Intersection(right)
			}
		}
	})

	var level []node
	for c, cand := range cands {
		if tids[c] == nil {
			continue
		}
		level = append(level, node{set: cand.set, tids: tids[c], count: counts[c]})
	}
	return level
}

func frequentOf(level []node, n int) []FrequentItemset {
	out := make([]FrequentItemset, len(level))
	for i, nd := range level {
		out[i] = FrequentItemset{
			Itemset: nd.set,
			Count:   nd.count,
			Support: metrics.Support(nd.count, n),
		}
	}
	return out
}
