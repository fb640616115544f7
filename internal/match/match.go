// Package match implements the scored fuzzy-matching engine: candidate
// generation over a read-only reference pool, keyword-overlap scoring,
// score blending and traffic-light classification.
package match

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/TFMV/reconcile/internal/config"
	"github.com/TFMV/reconcile/internal/country"
	"github.com/TFMV/reconcile/internal/normalize"
	"github.com/TFMV/reconcile/internal/similarity"
)

// Sentinel matched-name values for records that produce no usable match
const (
	NoData          = "NO DATA"
	NoDataInCountry = "NO DATA IN COUNTRY"
	NoMatch         = "NO MATCH"
)

// Record is one input row to reconcile against the reference pool.
// ID, ShortCode and ServiceFlag are passthrough business fields the
// engine never inspects.
type Record struct {
	CompanyName string `json:"company_name"`
	Country     string `json:"country"`
	ID          string `json:"id,omitempty"`
	ShortCode   string `json:"short_code,omitempty"`
	ServiceFlag string `json:"service_flag,omitempty"`
}

// Result is the engine's verdict for one record. MatchedName is either
// a reference client name or one of the sentinel values.
type Result struct {
	MatchedName    string `json:"matched_name"`
	Score          int    `json:"score"`
	MatchedID      string `json:"matched_id"`
	MatchedCountry string `json:"matched_country"`
	Tier           Tier   `json:"tier"`
}

// Service matches input records against a reference pool
type Service struct {
	pool      *Pool
	countries *country.Mapper
	scorer    similarity.Function
	logger    *zap.Logger

	countryAware     bool
	candidateLimit   int
	minScore         float64
	cheapWeight      float64
	keywordWeight    float64
	distinctiveBonus float64
	workers          int
}

// NewService creates a matching service over the given pool. The pool's
// normalizer is reused so queries and reference names go through the
// same canonicalization.
func NewService(cfg *config.Config, pool *Pool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		pool:             pool,
		countries:        country.NewMapper(cfg),
		scorer:           similarity.NewRegistry().GetByName(cfg.Matching.Scorer),
		logger:           logger,
		countryAware:     cfg.Matching.CountryAware,
		candidateLimit:   cfg.Matching.CandidateLimit,
		minScore:         cfg.Matching.MinScore,
		cheapWeight:      cfg.Matching.CheapWeight,
		keywordWeight:    cfg.Matching.KeywordWeight,
		distinctiveBonus: cfg.Matching.DistinctiveBonus,
		workers:          cfg.Matching.Workers,
	}

	// Apply defaults where the config left zeroes
	if s.candidateLimit <= 0 {
		s.candidateLimit = 30
	}
	if s.minScore <= 0 {
		s.minScore = 15
	}
	if s.cheapWeight <= 0 && s.keywordWeight <= 0 {
		s.cheapWeight = 0.4
		s.keywordWeight = 0.6
	}
	if s.distinctiveBonus <= 0 {
		s.distinctiveBonus = 10
	}

	return s
}

// Match reconciles a single record against the reference pool. It is
// total: every record yields exactly one Result, with data-quality
// problems encoded as sentinel values, never errors.
func (s *Service) Match(record Record) Result {
	query := s.pool.normalizer.Normalize(record.CompanyName)
	if utf8.RuneCountInString(query) < 2 {
		return Result{MatchedName: NoData, Tier: TierRed}
	}

	scope := ""
	if s.countryAware {
		// An empty scope means the flat pool, so a record without a
		// country must not reach candidate generation
		if strings.TrimSpace(record.Country) == "" {
			return Result{MatchedName: NoData, Tier: TierRed}
		}
		scope = s.countries.Code(record.Country)
	}

	pool := s.pool.Candidates(scope)
	if len(pool) == 0 {
		if s.countryAware {
			return Result{MatchedName: NoDataInCountry, Tier: TierRed}
		}
		return Result{MatchedName: NoData, Tier: TierRed}
	}

	shortlist := topCandidates(query, pool, s.scorer, s.candidateLimit)
	if len(shortlist) == 0 {
		return Result{MatchedName: NoMatch, Tier: TierRed}
	}

	queryKeywords := s.pool.normalizer.Keywords(query)
	distinctive := normalize.Distinctive(queryKeywords)
	distinctiveShort := distinctive != "" && utf8.RuneCountInString(distinctive) < shortDistinctiveLen

	// Re-evaluate the shortlist with the keyword scorer; the first
	// strictly greater blended score wins
	var (
		bestName  string
		bestScore float64
		found     bool
	)
	for _, candidate := range shortlist {
		kwScore, distinctiveExact := keywordScore(queryKeywords, s.pool.normalizer.Keywords(candidate.Name))
		blended := candidate.Score*s.cheapWeight + kwScore*s.keywordWeight
		if distinctiveExact {
			blended = clamp100(blended + s.distinctiveBonus)
		}
		if blended > bestScore {
			bestName = candidate.Name
			bestScore = blended
			found = true
		}
	}

	if !found || bestScore < s.minScore {
		return Result{MatchedName: NoMatch, Tier: TierRed}
	}

	ref, ok := s.pool.Resolve(scope, bestName)
	if !ok {
		// Shortlist names always come from the pool
		return Result{MatchedName: NoMatch, Tier: TierRed}
	}

	score := int(bestScore)
	if score > 100 {
		score = 100
	}
	tier := Classify(score, distinctiveShort)

	s.logger.Debug("record matched",
		zap.String("query", query),
		zap.String("matched", ref.ClientName),
		zap.Int("score", score),
		zap.String("tier", string(tier)))

	return Result{
		MatchedName:    ref.ClientName,
		Score:          score,
		MatchedID:      ref.ClientID,
		MatchedCountry: ref.CountryCode,
		Tier:           tier,
	}
}

// MatchAll reconciles records concurrently. Results are written to the
// slot of their input record, so the output order mirrors the input
// order regardless of completion order. Cancelling the context stops
// new records from being issued; records already in flight complete and
// keep their slots.
func (s *Service) MatchAll(ctx context.Context, records []Record) ([]Result, error) {
	results := make([]Result, len(records))
	if len(records) == 0 {
		return results, nil
	}

	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = s.Match(records[i])
			}
		}()
	}

	for i := range records {
		select {
		case indices <- i:
		case <-ctx.Done():
			close(indices)
			wg.Wait()
			return results, ctx.Err()
		}
	}
	close(indices)
	wg.Wait()

	return results, nil
}

// Pool returns the reference pool the service matches against
func (s *Service) Pool() *Pool {
	return s.pool
}
