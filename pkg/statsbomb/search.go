package statsbomb

import (
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
/// NAME SEARCH
///////////////////////////////////////////////////////////////////////////////

/**
* Player and team names in the open data are full legal names, so
* looking up "Messi" against "Lionel Andrés Messi Cuccittini" needs a
* fuzzy match. The score slides the shorter string across the longer
* one and takes the best Levenshtein distance, scaled to 0..1 where 1
* is a perfect substring match.
 */
func FuzzyScore(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 1
		}
		return 0
	}

	best := len(longer)
	for i := 0; i+len(shorter) <= len(longer); i++ {
		d := levenshtein(shorter, longer[i:i+len(shorter)])
		if d < best {
			best = d
		}
		if best == 0 {
			break
		}
	}
	return 1 - float64(best)/float64(len(shorter))
}

func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}
	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}

func minInt(a, b, c int) int {
	if a < b && a < c {
		return a
	}
	if b < c {
		return b
	}
	return c
}

// the minimum score FindRow accepts as a match
const fuzzyThreshold = 0.7

/**
* FindRow returns the table row whose named column best matches the
* query, along with its score. An error is returned when nothing
* scores above the match threshold, which catches typos rather than
* silently picking a bad row.
 */
func FindRow(table *Table, column, query string) (map[string]any, float64, error) {
	if table == nil || table.NumRows() == 0 {
		return nil, 0, fmt.Errorf("no rows to search")
	}
	var best map[string]any
	bestScore := -1.0
	for _, row := range table.Rows {
		name, ok := row[column].(string)
		if !ok {
			continue
		}
		score := FuzzyScore(query, name)
		if score > bestScore {
			bestScore = score
			best = row
		}
	}
	if best == nil || bestScore < fuzzyThreshold {
		return nil, bestScore, fmt.Errorf("no %s matching %q", column, query)
	}
	return best, bestScore, nil
}

// FindPlayer looks a player up by name in a lineup table
func FindPlayer(lineups *Table, name string) (map[string]any, error) {
	row, _, err := FindRow(lineups, "player_name", name)
	return row, err
}

// FindTeam looks a team up by name in a match table
func FindTeam(matches *Table, name string) (map[string]any, error) {
	if row, _, err := FindRow(matches, "home_team_name", name); err == nil {
		return row, nil
	}
	row, _, err := FindRow(matches, "away_team_name", name)
	return row, err
}
