package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	jordan := &Player{
		ID: "michael-jordan", Name: "Michael Jordan",
		Teams: []string{"CHI", "WAS"}, Position: "G", Country: "USA",
		Decades: []string{"1980s", "1990s", "2000s"},
		MVP:     true, DPOY: true, ROY: true, Champion: true,
		AllStar: true, AllNBA: true, AllDefensive: true,
		PPG: 30.1, RPG: 6.2, APG: 5.3,
	}
	jokic := &Player{
		ID: "nikola-jokic", Name: "Nikola Jokic",
		Teams: []string{"DEN"}, Position: "C", Country: "Serbia",
		Decades: []string{"2010s", "2020s"},
		MVP:     true, Champion: true, AllStar: true, AllNBA: true,
		PPG: 20.9, RPG: 10.5, APG: 7.0,
	}

	cases := []struct {
		name     string
		player   *Player
		criteria Criteria
		want     bool
	}{
		{"team hit", jordan, Criteria{Type: CriteriaTeam, Value: "CHI"}, true},
		{"team second franchise", jordan, Criteria{Type: CriteriaTeam, Value: "WAS"}, true},
		{"team miss", jordan, Criteria{Type: CriteriaTeam, Value: "LAL"}, false},
		{"mvp", jokic, Criteria{Type: CriteriaMVP, Value: "mvp"}, true},
		{"dpoy miss", jokic, Criteria{Type: CriteriaDPOY, Value: "dpoy"}, false},
		{"roy miss", jokic, Criteria{Type: CriteriaROY, Value: "roy"}, false},
		{"champion", jokic, Criteria{Type: CriteriaChampion, Value: "champion"}, true},
		{"all-defensive", jordan, Criteria{Type: CriteriaAllDefensive, Value: "allDefensive"}, true},
		{"decade hit", jordan, Criteria{Type: CriteriaDecade, Value: "1990s"}, true},
		{"decade miss", jokic, Criteria{Type: CriteriaDecade, Value: "1990s"}, false},
		{"international hit", jokic, Criteria{Type: CriteriaCountry, Value: "international"}, true},
		{"international miss", jordan, Criteria{Type: CriteriaCountry, Value: "international"}, false},
		{"specific country", jokic, Criteria{Type: CriteriaCountry, Value: "Serbia"}, true},
		{"ppg above threshold", jordan, Criteria{Type: CriteriaPPG, Value: "25"}, true},
		{"ppg below threshold", jokic, Criteria{Type: CriteriaPPG, Value: "25"}, false},
		{"rpg threshold", jokic, Criteria{Type: CriteriaRPG, Value: "10"}, true},
		{"apg threshold", jokic, Criteria{Type: CriteriaAPG, Value: "7"}, true},
		{"position hit", jokic, Criteria{Type: CriteriaPosition, Value: "C"}, true},
		{"position miss", jordan, Criteria{Type: CriteriaPosition, Value: "F"}, false},
		{"unknown type", jordan, Criteria{Type: CriteriaType("shoe-size"), Value: "13"}, false},
		{"nil player", nil, Criteria{Type: CriteriaMVP, Value: "mvp"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Matches(tc.player, tc.criteria))
		})
	}
}

func TestGridCriteriaValues(t *testing.T) {
	gc := GridCriteria{
		Rows: []Criteria{{Value: "a"}, {Value: "b"}},
		Cols: []Criteria{{Value: "c"}},
	}
	assert.Equal(t, []string{"a", "b", "c"}, gc.Values())
}
