package models

// DefaultBudget is the auction budget a team starts with.
const DefaultBudget = 200

// Team represents a fantasy team participating in the auction.
//
// A team associates with zero or more players through
// Player.FantasyTeamID. The association is owned by the player record;
// deleting a team must not orphan players, so single deletion is blocked
// while any player still points here.
type Team struct {
	// ID is the store-assigned unique identifier.
	ID int64

	// Name is the team's display name, unique across all teams
	// (exact, case-sensitive match).
	Name string

	// Budget is the total auction spending allowance.
	Budget int
}
