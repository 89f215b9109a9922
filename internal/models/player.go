package models

// Player represents an NFL player on the draft board.
type Player struct {
	// ID is the store-assigned unique identifier.
	ID int64

	// Name is the player's display name, taken verbatim from ingestion.
	Name string

	// Position is the player's position (QB, RB, WR, TE, ...), free-form.
	Position string

	// Team is the NFL team abbreviation (e.g. "BUF"), free-form.
	Team string

	// ProjectedPoints is the projected fantasy point total for the season.
	// Nil when the roster source carried no projection.
	ProjectedPoints *float64

	// Drafted reports whether the player has been won at auction.
	Drafted bool

	// DraftPrice is the winning auction price. Set by the draft
	// transaction; nil until the player is drafted.
	DraftPrice *int

	// DraftedBy is a free-text label for who drafted the player. Kept
	// independent of the team association for backwards compatibility.
	DraftedBy *string

	// FantasyTeamID is a weak reference to the owning Team. Nil when the
	// player is unassigned; cleared when teams are bulk-deleted.
	FantasyTeamID *int64
}
