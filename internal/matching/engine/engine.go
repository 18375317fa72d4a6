// Package engine implements reviewer-candidate scoring for proposals.
// Rank is a pure function: no I/O, deterministic for a given input order.
package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Scoring weights. These are load-bearing for compatibility with stored
// expectations; change them only together with the editorial team.
const (
	researchAreaPoints   = 40
	keywordPoints        = 15
	keywordPointsCap     = 30
	hIndexPoints         = 10
	hIndexThreshold      = 10
	experiencePoints     = 10
	experienceThreshold  = 5
	capacityPenalty      = 20
	defaultMaxConcurrent = 3
)

// Candidate is a reviewer-expertise snapshot used as scoring input.
type Candidate struct {
	UserID               string
	ResearchAreas        []string
	Keywords             []string
	HIndex               *int
	YearsExperience      *int
	CurrentReviewsCount  int
	MaxConcurrentReviews int
}

// RankedCandidate is one entry of the ranked output.
type RankedCandidate struct {
	Candidate   Candidate
	Score       int
	Reasons     []string
	HasCapacity bool
}

// Rank scores every candidate against the proposal's research area and
// keywords and returns the pool ordered by descending score. Ties keep the
// original pool order (stable sort), so the output is deterministic.
// Absent candidate fields score zero; they are never an error.
func Rank(researchArea string, keywords []string, pool []Candidate) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(pool))
	for _, candidate := range pool {
		ranked = append(ranked, score(researchArea, keywords, candidate))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// score computes one candidate's score and reasons.
func score(researchArea string, keywords []string, candidate Candidate) RankedCandidate {
	total := 0
	reasons := []string{}

	if researchArea != "" && containsString(candidate.ResearchAreas, researchArea) {
		total += researchAreaPoints
		reasons = append(reasons, fmt.Sprintf("Research area: %s", researchArea))
	}

	if matched := matchKeywords(keywords, candidate.Keywords); len(matched) > 0 {
		points := len(matched) * keywordPoints
		if points > keywordPointsCap {
			points = keywordPointsCap
		}
		total += points
		reasons = append(reasons, fmt.Sprintf("Keywords: %s", strings.Join(matched, ", ")))
	}

	if candidate.HIndex != nil && *candidate.HIndex >= hIndexThreshold {
		total += hIndexPoints
		reasons = append(reasons, fmt.Sprintf("h-index: %d", *candidate.HIndex))
	}

	if candidate.YearsExperience != nil && *candidate.YearsExperience >= experienceThreshold {
		total += experiencePoints
		reasons = append(reasons, fmt.Sprintf("%d years experience", *candidate.YearsExperience))
	}

	hasCapacity := candidate.CurrentReviewsCount < maxConcurrent(candidate)
	if !hasCapacity {
		total -= capacityPenalty
		if total < 0 {
			total = 0
		}
		reasons = append(reasons, "At capacity")
	}

	return RankedCandidate{
		Candidate:   candidate,
		Score:       total,
		Reasons:     reasons,
		HasCapacity: hasCapacity,
	}
}

// matchKeywords returns the proposal keywords that match at least one
// candidate keyword. A pair matches when either side is a case-insensitive
// substring of the other.
func matchKeywords(proposalKeywords, candidateKeywords []string) []string {
	matched := make([]string, 0, len(proposalKeywords))
	for _, pk := range proposalKeywords {
		if pk == "" {
			continue
		}
		for _, ck := range candidateKeywords {
			if ck == "" {
				continue
			}
			if keywordsOverlap(pk, ck) {
				matched = append(matched, pk)
				break
			}
		}
	}
	return matched
}

func keywordsOverlap(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func maxConcurrent(candidate Candidate) int {
	if candidate.MaxConcurrentReviews <= 0 {
		return defaultMaxConcurrent
	}
	return candidate.MaxConcurrentReviews
}
