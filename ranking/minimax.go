// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"sort"

	"github.com/danielhkuo/book-poll/models"
)

// Matrix holds pairwise preference counts.
// Matrix[x][y] is the number of voters ranking book x ahead of book y.
type Matrix map[string]map[string]int

// Prefer returns how many voters ranked x ahead of y.
func (m Matrix) Prefer(x, y string) int {
	return m[x][y]
}

// Tally builds the pairwise preference matrix for the given books.
// IDs not among books are ignored, and a repeated ID within one
// ranking only counts at its first position.
func Tally(books []models.Book, voters []models.Voter) Matrix {
	m := make(Matrix, len(books))
	for _, b := range books {
		m[b.ID] = make(map[string]int, len(books))
	}

	for _, voter := range voters {
		ranked := filterRanking(voter.Rankings, m)

		// Each earlier entry is preferred over every later one
		for i := 0; i < len(ranked); i++ {
			for j := i + 1; j < len(ranked); j++ {
				m[ranked[i]][ranked[j]]++
			}
		}
	}

	return m
}

// filterRanking drops unknown and repeated IDs, keeping order
func filterRanking(rankings []string, known Matrix) []string {
	seen := make(map[string]bool, len(rankings))
	out := make([]string, 0, len(rankings))
	for _, id := range rankings {
		if _, ok := known[id]; !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// WorstDefeat returns the largest net margin by which the book loses to
// any single opponent. A book with no opponents has a worst defeat of 0.
func (m Matrix) WorstDefeat(bookID string, books []models.Book) int {
	worst := 0
	hasOpponent := false
	for _, opp := range books {
		if opp.ID == bookID {
			continue
		}
		margin := m.Prefer(opp.ID, bookID) - m.Prefer(bookID, opp.ID)
		if !hasOpponent || margin > worst {
			worst = margin
			hasOpponent = true
		}
	}
	return worst
}

// Compute ranks books with the Minimax Condorcet method.
//
// Callers pass only the voters that should be counted; Compute does not
// look at completion or exclusion status. Books are ordered by ascending
// worst defeat, ties keep their input order and share a rank, and the
// next distinct value resumes at its position (1, 1, 3).
func Compute(books []models.Book, voters []models.Voter) []models.RankedResult {
	results := make([]models.RankedResult, len(books))

	// No preference information: keep input order
	if len(books) == 0 || len(voters) == 0 {
		for i, book := range books {
			results[i] = models.RankedResult{Book: book, WorstDefeat: 0, Rank: i + 1}
		}
		return results
	}

	m := Tally(books, voters)
	for i, book := range books {
		results[i] = models.RankedResult{Book: book, WorstDefeat: m.WorstDefeat(book.ID, books)}
	}

	// Smaller worst defeat is better
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].WorstDefeat < results[j].WorstDefeat
	})

	for i := range results {
		if i > 0 && results[i].WorstDefeat == results[i-1].WorstDefeat {
			results[i].Rank = results[i-1].Rank
			continue
		}
		results[i].Rank = i + 1
	}

	return results
}
