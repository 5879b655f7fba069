package statsbomb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyScore(t *testing.T) {
	// a perfect substring scores 1 regardless of the longer name
	assert.Equal(t, 1.0, FuzzyScore("Messi", "Lionel Andres Messi Cuccittini"))
	assert.Equal(t, 1.0, FuzzyScore("barcelona", "Barcelona"))

	// a one letter slip against a five letter query costs a fifth
	assert.InDelta(t, 0.8, FuzzyScore("Mezsi", "Lionel Andres Messi Cuccittini"), 1e-9)

	// nothing in common scores low
	assert.Less(t, FuzzyScore("xxxxx", "Jordi Alba"), 0.5)

	assert.Equal(t, 1.0, FuzzyScore("", ""))
	assert.Equal(t, 0.0, FuzzyScore("", "Messi"))
}

func TestFindPlayer(t *testing.T) {
	lineups, err := ReadLineups([]byte(sampleLineups), 7)
	require.NoError(t, err)

	row, err := FindPlayer(lineups, "messi")
	require.NoError(t, err)
	assert.Equal(t, 5503.0, row["player_id"])

	row, err = FindPlayer(lineups, "Benzema")
	require.NoError(t, err)
	assert.Equal(t, "Karim Benzema", row["player_name"])

	_, err = FindPlayer(lineups, "Zlatan Ibrahimovic")
	assert.Error(t, err)

	_, err = FindPlayer(nil, "Messi")
	assert.Error(t, err)
}

func TestFindTeam(t *testing.T) {
	matches, err := ReadMatches([]byte(sampleMatches))
	require.NoError(t, err)

	// matches the home side of the first fixture
	row, err := FindTeam(matches, "barcelona")
	require.NoError(t, err)
	assert.Equal(t, "Barcelona", row["home_team_name"])

	_, err = FindTeam(matches, "Borussia Dortmund")
	assert.Error(t, err)
}
