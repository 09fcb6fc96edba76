package oracle

// Difficulty selects which criteria pools the generator draws from.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a raw string to a known difficulty, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s)
	default:
		return DifficultyMedium
	}
}

// CriteriaType identifies how a criteria value is interpreted.
type CriteriaType string

const (
	CriteriaTeam         CriteriaType = "team"
	CriteriaMVP          CriteriaType = "mvp"
	CriteriaDPOY         CriteriaType = "dpoy"
	CriteriaROY          CriteriaType = "roy"
	CriteriaChampion     CriteriaType = "champion"
	CriteriaAllStar      CriteriaType = "allStar"
	CriteriaAllNBA       CriteriaType = "allNBA"
	CriteriaAllDefensive CriteriaType = "allDefensive"
	CriteriaDecade       CriteriaType = "decade"
	CriteriaCountry      CriteriaType = "country"
	CriteriaPPG          CriteriaType = "ppg"
	CriteriaRPG          CriteriaType = "rpg"
	CriteriaAPG          CriteriaType = "apg"
	CriteriaPosition     CriteriaType = "position"
)

// Criteria is one row or column win condition. The battle core treats it as
// opaque; only Matches interprets it.
type Criteria struct {
	Type  CriteriaType `json:"type"`
	Value string       `json:"value"`
	Label string       `json:"label"`
}

// GridCriteria is the full set of conditions for one round.
type GridCriteria struct {
	Rows []Criteria `json:"rows"`
	Cols []Criteria `json:"cols"`
}

// Values returns every criteria value in the grid, used as an exclusion list
// when regenerating so consecutive rounds don't repeat prompts.
func (g GridCriteria) Values() []string {
	values := make([]string, 0, len(g.Rows)+len(g.Cols))
	for _, c := range g.Rows {
		values = append(values, c.Value)
	}
	for _, c := range g.Cols {
		values = append(values, c.Value)
	}
	return values
}

// Player is an authoritative reference record. Caller-submitted player
// payloads are never trusted for scoring; identity is always resolved against
// these records.
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Teams    []string `json:"teams"`
	Position string   `json:"position"`
	Country  string   `json:"country"`
	Decades  []string `json:"decades"`

	MVP          bool `json:"mvp"`
	DPOY         bool `json:"dpoy"`
	ROY          bool `json:"roy"`
	Champion     bool `json:"champion"`
	AllStar      bool `json:"allStar"`
	AllNBA       bool `json:"allNBA"`
	AllDefensive bool `json:"allDefensive"`

	PPG float64 `json:"ppgCareer"`
	RPG float64 `json:"rpgCareer"`
	APG float64 `json:"apgCareer"`
}
