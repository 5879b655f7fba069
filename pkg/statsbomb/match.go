package statsbomb

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/richard-senior/pitchplot/internal/logger"
)

///////////////////////////////////////////////////////////////////////////////
/// MATCHES
///////////////////////////////////////////////////////////////////////////////

var matchLeadingColumns = []string{
	"match_id", "kick_off", "competition_id", "competition_name", "season_id",
	"season_name", "home_team_id", "home_team_name", "away_team_id", "away_team_name",
	"home_score", "away_score", "match_week", "competition_stage_id",
	"competition_stage_name", "stadium_id", "stadium_name", "referee_id", "referee_name",
}

/**
* ReadMatches flattens a competition/season match json into a table,
* one row per match. The nested competition, season, team, stadium and
* referee objects become underscore separated columns and the kick off
* becomes a full datetime from the match date and kick off time.
*
* The per-team gender columns always agree so only one survives, as
* competition_gender, and match_status is dropped since open data only
* lists available matches.
 */
func ReadMatches(data []byte) (*Table, error) {
	if Config.Warn {
		logger.Warn(LicenceWarning)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("expected a json array of matches")
	}
	raw := parsed.Array()
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty match json")
	}

	table := NewTable(matchLeadingColumns...)
	for _, m := range raw {
		row := map[string]any{}
		m.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			switch name {
			case "home_team", "away_team":
				value.ForEach(func(k, v gjson.Result) bool {
					child := k.String()
					if !strings.HasPrefix(child, name) {
						child = name + "_" + child
					}
					// managers is a single-entry list holding the
					// manager object
					if strings.HasSuffix(child, "_managers") {
						if first := v.Get("0"); first.Exists() {
							flattenValue(row, child, first)
						}
						return true
					}
					flattenValue(row, child, v)
					return true
				})
			case "home_team_managers", "away_team_managers":
				if first := value.Get("0"); first.Exists() {
					flattenValue(row, name, first)
				}
			default:
				flattenValue(row, name, value)
			}
			return true
		})

		// combine the date and time into one sortable kick off value
		date, _ := row["match_date"].(string)
		kickOff, _ := row["kick_off"].(string)
		if date != "" && kickOff != "" {
			row["kick_off"] = date + " " + kickOff
		}

		// the team genders always match
		row["competition_gender"] = row["home_team_gender"]
		delete(row, "home_team_gender")
		delete(row, "away_team_gender")
		delete(row, "match_status")

		table.AddRow(row)
	}
	table.SortBy("kick_off")
	return table, nil
}

///////////////////////////////////////////////////////////////////////////////
/// COMPETITIONS
///////////////////////////////////////////////////////////////////////////////

/**
* ReadCompetitions loads the competitions json as a table sorted by
* competition then season. The json is already flat.
 */
func ReadCompetitions(data []byte) (*Table, error) {
	if Config.Warn {
		logger.Warn(LicenceWarning)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("expected a json array of competitions")
	}
	raw := parsed.Array()
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty competition json")
	}

	table := NewTable("competition_id", "season_id", "competition_name",
		"competition_gender", "country_name", "season_name")
	for _, c := range raw {
		row := map[string]any{}
		c.ForEach(func(key, value gjson.Result) bool {
			flattenValue(row, key.String(), value)
			return true
		})
		table.AddRow(row)
	}
	table.SortBy("competition_id", "season_id")
	return table, nil
}

///////////////////////////////////////////////////////////////////////////////
/// LINEUPS
///////////////////////////////////////////////////////////////////////////////

/**
* ReadLineups flattens a match lineup json into a table with one row
* per player, carrying the team and match alongside the player details.
 */
func ReadLineups(data []byte, matchID int) (*Table, error) {
	if Config.Warn {
		logger.Warn(LicenceWarning)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("expected a json array of team lineups")
	}
	raw := parsed.Array()
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty lineup json")
	}

	table := NewTable("team_id", "team_name", "match_id", "player_id",
		"player_name", "player_nickname", "jersey_number", "country_id", "country_name")
	for _, team := range raw {
		teamID := cellValue(team.Get("team_id"))
		teamName := cellValue(team.Get("team_name"))
		team.Get("lineup").ForEach(func(_, player gjson.Result) bool {
			row := map[string]any{
				"team_id":   teamID,
				"team_name": teamName,
				"match_id":  matchID,
			}
			player.ForEach(func(k, v gjson.Result) bool {
				flattenValue(row, k.String(), v)
				return true
			})
			table.AddRow(row)
			return true
		})
	}
	table.SortBy("player_id")
	return table, nil
}
