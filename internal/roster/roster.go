// Package roster parses tabular player data into Player records.
//
// Roster CSVs come from a few different tools, so header names vary between
// lower-snake ("projected_points") and human title-case ("Projected Points").
// Each field is resolved through an ordered list of candidate column names,
// matched case-insensitively, with the lower-snake spelling taking
// precedence when both columns are present.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/draftops/draftboard/internal/models"
)

// Candidate column names per field, in precedence order.
var (
	nameColumns     = []string{"name"}
	positionColumns = []string{"position"}
	nflTeamColumns  = []string{"team"}
	pointsColumns   = []string{"projected_points", "projected points"}
)

// Parse reads a CSV roster and returns one Player per data row.
//
// Every returned player is undrafted: no price, no drafted-by label, no
// team association. String fields are taken verbatim and default to empty
// when the column is absent. Projected points are parsed only when a
// non-empty value exists under either naming convention; a malformed
// value fails the whole parse rather than being coerced.
//
// An empty input (no rows, or a header with no data rows) yields zero
// players and no error.
func Parse(r io.Reader) ([]*models.Player, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	columns := indexColumns(header)

	var players []*models.Player
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		player, err := playerFromRecord(columns, record)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

// indexColumns maps normalized header names to field positions.
// The first occurrence of a name wins.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := columns[key]; !ok {
			columns[key] = i
		}
	}
	return columns
}

func playerFromRecord(columns map[string]int, record []string) (*models.Player, error) {
	player := &models.Player{
		Name:     stringField(columns, record, nameColumns),
		Position: stringField(columns, record, positionColumns),
		Team:     stringField(columns, record, nflTeamColumns),
	}

	raw := nonEmptyField(columns, record, pointsColumns)
	if raw != "" {
		points, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid projected_points value %q for player %q", raw, player.Name)
		}
		player.ProjectedPoints = &points
	}
	return player, nil
}

// stringField returns the value of the first candidate column present in
// the header, or "" if none is.
func stringField(columns map[string]int, record []string, candidates []string) string {
	for _, name := range candidates {
		if i, ok := columns[name]; ok && i < len(record) {
			return record[i]
		}
	}
	return ""
}

// nonEmptyField returns the first candidate column's value that is
// present and non-empty, so an empty lower-snake cell falls through to
// the title-case column.
func nonEmptyField(columns map[string]int, record []string, candidates []string) string {
	for _, name := range candidates {
		if i, ok := columns[name]; ok && i < len(record) {
			if v := strings.TrimSpace(record[i]); v != "" {
				return v
			}
		}
	}
	return ""
}
