// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ranking implements the Minimax Condorcet tally used for poll results.

# Algorithm

For every ordered pair of books (X, Y) the tally counts the voters who ranked
X ahead of Y. A book's worst defeat is the largest net margin by which it
loses to any single opponent:

	worstDefeat(X) = max over Y of (pairwise[Y][X] - pairwise[X][Y])

Books are sorted by ascending worst defeat. A worst defeat of zero or less
means the book beats or ties every opponent.

# Usage

	results := ranking.Compute(poll.Books, poll.TallyableVoters())

Compute is pure and deterministic. Partial rankings are compared pairwise;
a book missing from a ranking carries no preference for that voter. IDs that
are not among the books are ignored rather than rejected.
*/
package ranking
