package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/models"
)

// SearchService answers fuzzy client-name lookups over reservations.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity scores two strings in [0, 1] by levenshtein distance.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

const searchSimilarityThreshold = 0.4

// SearchReservations finds transactions whose client name resembles the
// query. Candidates within the branch are scored concurrently and returned
// best match first.
func (s *SearchService) SearchReservations(tenantID, branchID uint, q dto.SearchReservationsQuery) ([]dto.ScoredTransaction, error) {
	limit := q.Limit
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	normalizedQuery := normalizeInput(q.Query)

	var candidates []models.Transaction
	err := s.db.
		Where("tenant_id = ? AND branch_id = ?", tenantID, branchID).
		Order("created_at DESC").
		Limit(500).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []dto.ScoredTransaction{}, nil
	}

	names := make([]string, 0, len(candidates))
	for _, t := range candidates {
		names = append(names, normalizeInput(t.ClientName))
	}
	matcher := createMatcher(names)
	closest := matcher.Closest(normalizedQuery)

	results := make(chan dto.ScoredTransaction, len(candidates))
	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(t models.Transaction, name string) {
			defer wg.Done()
			score := calculateSimilarity(normalizedQuery, name)
			if strings.Contains(name, normalizedQuery) || name == closest {
				if score < searchSimilarityThreshold {
					score = searchSimilarityThreshold
				}
			}
			if score >= searchSimilarityThreshold {
				results <- dto.ScoredTransaction{Transaction: t, Score: score}
			}
		}(candidates[i], names[i])
	}
	wg.Wait()
	close(results)

	scored := make([]dto.ScoredTransaction, 0, len(candidates))
	for r := range results {
		scored = append(scored, r)
	}
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}
