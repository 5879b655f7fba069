package statsbomb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMatches = `[
{"match_id":2,"match_date":"2020-03-01","kick_off":"21:00:00.000",
 "competition":{"competition_id":11,"country_name":"Spain","competition_name":"La Liga"},
 "season":{"season_id":42,"season_name":"2019/2020"},
 "home_team":{"home_team_id":220,"home_team_name":"Real Madrid","home_team_gender":"male",
  "managers":[{"id":99,"name":"Zinedine Zidane","nickname":"Zizou",
   "country":{"id":78,"name":"France"}}]},
 "away_team":{"away_team_id":217,"away_team_name":"Barcelona","away_team_gender":"male"},
 "home_score":2,"away_score":0,"match_status":"available","match_week":26,
 "competition_stage":{"id":1,"name":"Regular Season"},
 "stadium":{"id":4727,"name":"Santiago Bernabeu","country":{"id":214,"name":"Spain"}},
 "referee":{"id":223,"name":"Mateu Lahoz"}},
{"match_id":1,"match_date":"2019-12-18","kick_off":"20:00:00.000",
 "competition":{"competition_id":11,"country_name":"Spain","competition_name":"La Liga"},
 "season":{"season_id":42,"season_name":"2019/2020"},
 "home_team":{"home_team_id":217,"home_team_name":"Barcelona","home_team_gender":"male"},
 "away_team":{"away_team_id":220,"away_team_name":"Real Madrid","away_team_gender":"male"},
 "home_score":0,"away_score":0,"match_status":"available","match_week":10}
]`

func TestReadMatches(t *testing.T) {
	table, err := ReadMatches([]byte(sampleMatches))
	require.NoError(t, err)
	require.Equal(t, 2, table.NumRows())

	// sorted by kick off, which combines the date and time
	first := table.Rows[0]
	assert.Equal(t, 1.0, first["match_id"])
	assert.Equal(t, "2019-12-18 20:00:00.000", first["kick_off"])

	second := table.Rows[1]
	assert.Equal(t, "La Liga", second["competition_name"])
	assert.Equal(t, "Real Madrid", second["home_team_name"])
	assert.Equal(t, "Santiago Bernabeu", second["stadium_name"])
	assert.Equal(t, "Mateu Lahoz", second["referee_name"])

	// the manager list is a single entry, flattened in place
	assert.Equal(t, "Zinedine Zidane", second["home_team_managers_name"])
	assert.Equal(t, "France", second["home_team_managers_country_name"])

	// the per-team genders collapse into one column
	assert.Equal(t, "male", second["competition_gender"])
	assert.NotContains(t, second, "home_team_gender")
	assert.NotContains(t, second, "away_team_gender")
	assert.NotContains(t, second, "match_status")
}

func TestReadMatchesRejectsBadJSON(t *testing.T) {
	_, err := ReadMatches([]byte(`{}`))
	assert.Error(t, err)
	_, err = ReadMatches([]byte(`[]`))
	assert.Error(t, err)
}

const sampleCompetitions = `[
{"competition_id":16,"season_id":4,"country_name":"Europe","competition_name":"Champions League",
 "competition_gender":"male","season_name":"2018/2019"},
{"competition_id":11,"season_id":42,"country_name":"Spain","competition_name":"La Liga",
 "competition_gender":"male","season_name":"2019/2020"}
]`

func TestReadCompetitions(t *testing.T) {
	table, err := ReadCompetitions([]byte(sampleCompetitions))
	require.NoError(t, err)
	require.Equal(t, 2, table.NumRows())

	// sorted by competition then season
	assert.Equal(t, 11.0, table.Rows[0]["competition_id"])
	assert.Equal(t, "La Liga", table.Rows[0]["competition_name"])
	assert.Equal(t, 16.0, table.Rows[1]["competition_id"])
}

const sampleLineups = `[
{"team_id":217,"team_name":"Barcelona","lineup":[
 {"player_id":5503,"player_name":"Lionel Messi","player_nickname":"Leo Messi",
  "jersey_number":10,"country":{"id":11,"name":"Argentina"}},
 {"player_id":5211,"player_name":"Jordi Alba","player_nickname":null,
  "jersey_number":18,"country":{"id":214,"name":"Spain"}}]},
{"team_id":220,"team_name":"Real Madrid","lineup":[
 {"player_id":5721,"player_name":"Karim Benzema","player_nickname":null,
  "jersey_number":9,"country":{"id":78,"name":"France"}}]}
]`

func TestReadLineups(t *testing.T) {
	table, err := ReadLineups([]byte(sampleLineups), 7)
	require.NoError(t, err)
	require.Equal(t, 3, table.NumRows())

	// one row per player, sorted by player id, carrying the team and
	// match alongside
	assert.Equal(t, 5211.0, table.Rows[0]["player_id"])
	assert.Equal(t, "Jordi Alba", table.Rows[0]["player_name"])
	assert.Equal(t, 217.0, table.Rows[0]["team_id"])
	assert.Equal(t, 7, table.Rows[0]["match_id"])
	assert.Equal(t, "Argentina", table.Rows[1]["country_name"])
	assert.Equal(t, "Karim Benzema", table.Rows[2]["player_name"])
}
