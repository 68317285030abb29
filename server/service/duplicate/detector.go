// Package duplicate detects existing field definitions that are likely
// duplicates of a name the user is typing, and explains why each matched.
package duplicate

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/fieldsense/fieldsense/plugin/ai"
	"github.com/fieldsense/fieldsense/store"
)

// MatchKind classifies how a field matched the candidate name.
type MatchKind string

const (
	MatchKindExact    MatchKind = "exact"
	MatchKindTypo     MatchKind = "typo"
	MatchKindSemantic MatchKind = "semantic"

	// matchKindNone marks a field that scored below the reporting floor.
	// It is filtered out before results are returned.
	matchKindNone MatchKind = "none"
)

// priority orders kinds by decreasing certainty for equal-score ties.
func (k MatchKind) priority() int {
	switch k {
	case MatchKindExact:
		return 3
	case MatchKindTypo:
		return 2
	case MatchKindSemantic:
		return 1
	default:
		return 0
	}
}

// Mode gates which matchers run.
type Mode string

const (
	// ModeBasic runs exact matching only: cheap, synchronous, no
	// external calls.
	ModeBasic Mode = "basic"
	// ModeSmart additionally runs edit-distance and semantic matching.
	ModeSmart Mode = "smart"
)

// Match pairs an existing field with the verdict for the candidate name.
type Match struct {
	Field       *store.FieldDefinition
	Kind        MatchKind
	Score       float64
	Explanation string
}

// Detector runs the duplicate-detection pipeline. It holds no per-call
// state; concurrent invocations are independent.
type Detector struct {
	cfg      Config
	provider ai.SimilarityProvider
	sem      *semaphore.Weighted
}

// NewDetector creates a detector. provider may be nil, in which case
// smart mode degrades to exact + typo matching.
func NewDetector(provider ai.SimilarityProvider, cfg Config) *Detector {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConfig().Concurrency
	}
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = DefaultConfig().ProviderTimeout
	}
	return &Detector{
		cfg:      cfg,
		provider: provider,
		sem:      semaphore.NewWeighted(cfg.Concurrency),
	}
}

// FindSimilar returns at most MaxResults fields likely duplicating the
// candidate name, ordered by descending score with ties broken by field
// name. An empty candidate (after normalization) yields no matches.
func (d *Detector) FindSimilar(ctx context.Context, candidate string, fields []*store.FieldDefinition, mode Mode) []Match {
	normCandidate := Normalize(candidate)
	if normCandidate == "" || len(fields) == 0 {
		return nil
	}

	// Per-field verdicts are independent; fan out bounded by the
	// semaphore since semantic scoring may block on the provider.
	verdicts := make([]Match, len(fields))
	var wg sync.WaitGroup
	for i, field := range fields {
		wg.Add(1)
		go func(i int, f *store.FieldDefinition) {
			defer wg.Done()
			if err := d.sem.Acquire(ctx, 1); err != nil {
				verdicts[i] = Match{Field: f, Kind: matchKindNone}
				return
			}
			defer d.sem.Release(1)
			verdicts[i] = d.scoreField(ctx, normCandidate, f, mode)
		}(i, field)
	}
	wg.Wait()

	matches := make([]Match, 0, len(verdicts))
	for _, v := range verdicts {
		if v.Kind == matchKindNone || v.Score < d.cfg.SemanticFloor {
			continue
		}
		v.Explanation = Explain(v.Kind, v.Score)
		matches = append(matches, v)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Field.Name != matches[j].Field.Name {
			return matches[i].Field.Name < matches[j].Field.Name
		}
		return matches[i].Field.UID < matches[j].Field.UID
	})

	if len(matches) > d.cfg.MaxResults {
		matches = matches[:d.cfg.MaxResults]
	}
	return matches
}

// scoreField keeps the single strongest verdict for one field.
func (d *Detector) scoreField(ctx context.Context, normCandidate string, f *store.FieldDefinition, mode Mode) Match {
	normName := Normalize(f.Name)

	if normCandidate == normName {
		return Match{Field: f, Kind: MatchKindExact, Score: 1.0}
	}

	best := Match{Field: f, Kind: matchKindNone}
	if mode != ModeSmart {
		return best
	}

	// Length pre-filter avoids the DP on obviously dissimilar pairs.
	if editSimilarityAtLeast(normCandidate, normName, d.cfg.TypoFloor) {
		if s := editSimilarity(normCandidate, normName); s >= d.cfg.TypoFloor && s <= d.cfg.TypoCeiling {
			best = stronger(best, Match{Field: f, Kind: MatchKindTypo, Score: s})
		}
	}

	if d.provider != nil {
		callCtx, cancel := context.WithTimeout(ctx, d.cfg.ProviderTimeout)
		s, err := d.provider.Similarity(callCtx, normCandidate, normName)
		cancel()
		if err != nil {
			// Semantic matching is best-effort: a failed or timed-out
			// provider call contributes no score.
			slog.Debug("semantic similarity unavailable",
				"field_uid", f.UID,
				"error", err)
		} else if s >= d.cfg.SemanticFloor {
			if s > 1 {
				s = 1
			}
			best = stronger(best, Match{Field: f, Kind: MatchKindSemantic, Score: s})
		}
	}

	return best
}

// stronger picks the higher-scoring verdict, breaking equal scores by
// matcher certainty: exact > typo > semantic.
func stronger(curr, next Match) Match {
	if next.Score > curr.Score {
		return next
	}
	if next.Score == curr.Score && next.Kind.priority() > curr.Kind.priority() {
		return next
	}
	return curr
}
