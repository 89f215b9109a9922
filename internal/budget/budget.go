// Package budget computes auction spending aggregates for fantasy teams.
//
// Functions here are pure: callers pass the player list explicitly, whether
// it came from a live store lookup or anywhere else, so both paths agree
// by construction.
package budget

import "github.com/draftops/draftboard/internal/models"

// Spent returns the sum of draft prices over the given players.
// Players without a draft price count as zero.
func Spent(players []*models.Player) int {
	total := 0
	for _, p := range players {
		if p.DraftPrice != nil {
			total += *p.DraftPrice
		}
	}
	return total
}

// Remaining returns the team's budget minus what its players cost.
// May go negative; overspending is not prevented at draft time.
func Remaining(team *models.Team, players []*models.Player) int {
	return team.Budget - Spent(players)
}
