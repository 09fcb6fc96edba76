package oracle

import "strconv"

// teamCriteria covers every active franchise.
var teamCriteria = []Criteria{
	{Type: CriteriaTeam, Value: "ATL", Label: "Hawks"},
	{Type: CriteriaTeam, Value: "BOS", Label: "Celtics"},
	{Type: CriteriaTeam, Value: "BKN", Label: "Nets"},
	{Type: CriteriaTeam, Value: "CHA", Label: "Hornets"},
	{Type: CriteriaTeam, Value: "CHI", Label: "Bulls"},
	{Type: CriteriaTeam, Value: "CLE", Label: "Cavaliers"},
	{Type: CriteriaTeam, Value: "DAL", Label: "Mavericks"},
	{Type: CriteriaTeam, Value: "DEN", Label: "Nuggets"},
	{Type: CriteriaTeam, Value: "DET", Label: "Pistons"},
	{Type: CriteriaTeam, Value: "GSW", Label: "Warriors"},
	{Type: CriteriaTeam, Value: "HOU", Label: "Rockets"},
	{Type: CriteriaTeam, Value: "IND", Label: "Pacers"},
	{Type: CriteriaTeam, Value: "LAC", Label: "Clippers"},
	{Type: CriteriaTeam, Value: "LAL", Label: "Lakers"},
	{Type: CriteriaTeam, Value: "MEM", Label: "Grizzlies"},
	{Type: CriteriaTeam, Value: "MIA", Label: "Heat"},
	{Type: CriteriaTeam, Value: "MIL", Label: "Bucks"},
	{Type: CriteriaTeam, Value: "MIN", Label: "Timberwolves"},
	{Type: CriteriaTeam, Value: "NOP", Label: "Pelicans"},
	{Type: CriteriaTeam, Value: "NYK", Label: "Knicks"},
	{Type: CriteriaTeam, Value: "OKC", Label: "Thunder"},
	{Type: CriteriaTeam, Value: "ORL", Label: "Magic"},
	{Type: CriteriaTeam, Value: "PHI", Label: "76ers"},
	{Type: CriteriaTeam, Value: "PHX", Label: "Suns"},
	{Type: CriteriaTeam, Value: "POR", Label: "Trail Blazers"},
	{Type: CriteriaTeam, Value: "SAC", Label: "Kings"},
	{Type: CriteriaTeam, Value: "SAS", Label: "Spurs"},
	{Type: CriteriaTeam, Value: "TOR", Label: "Raptors"},
	{Type: CriteriaTeam, Value: "UTA", Label: "Jazz"},
	{Type: CriteriaTeam, Value: "WAS", Label: "Wizards"},
}

// popularTeams keeps easy mode to franchises with deep star rosters so cell
// intersections stay solvable without obscure answers.
var popularTeams = map[string]bool{
	"LAL": true, "BOS": true, "GSW": true, "CHI": true, "MIA": true,
	"SAS": true, "PHI": true, "NYK": true, "HOU": true, "PHX": true,
	"CLE": true, "OKC": true, "MIL": true, "DAL": true, "DEN": true,
}

var awardCriteria = []Criteria{
	{Type: CriteriaMVP, Value: "mvp", Label: "MVP"},
	{Type: CriteriaDPOY, Value: "dpoy", Label: "Defensive POY"},
	{Type: CriteriaROY, Value: "roy", Label: "Rookie of the Year"},
	{Type: CriteriaChampion, Value: "champion", Label: "NBA Champion"},
	{Type: CriteriaAllStar, Value: "allStar", Label: "All-Star"},
	{Type: CriteriaAllNBA, Value: "allNBA", Label: "All-NBA"},
	{Type: CriteriaAllDefensive, Value: "allDefensive", Label: "All-Defensive"},
}

var majorAwardTypes = map[CriteriaType]bool{
	CriteriaMVP:      true,
	CriteriaChampion: true,
	CriteriaAllStar:  true,
}

var decadeCriteria = []Criteria{
	{Type: CriteriaDecade, Value: "1980s", Label: "Played in the 80s"},
	{Type: CriteriaDecade, Value: "1990s", Label: "Played in the 90s"},
	{Type: CriteriaDecade, Value: "2000s", Label: "Played in the 2000s"},
	{Type: CriteriaDecade, Value: "2010s", Label: "Played in the 2010s"},
	{Type: CriteriaDecade, Value: "2020s", Label: "Played in the 2020s"},
}

var statAndOriginCriteria = []Criteria{
	{Type: CriteriaCountry, Value: "international", Label: "International"},
	{Type: CriteriaPPG, Value: "20", Label: "20+ PPG career"},
	{Type: CriteriaPPG, Value: "25", Label: "25+ PPG career"},
	{Type: CriteriaRPG, Value: "10", Label: "10+ RPG career"},
	{Type: CriteriaAPG, Value: "7", Label: "7+ APG career"},
	{Type: CriteriaPosition, Value: "G", Label: "Guard"},
	{Type: CriteriaPosition, Value: "F", Label: "Forward"},
	{Type: CriteriaPosition, Value: "C", Label: "Center"},
}

// Matches reports whether the player satisfies a single criteria.
func Matches(p *Player, c Criteria) bool {
	if p == nil {
		return false
	}
	switch c.Type {
	case CriteriaTeam:
		for _, t := range p.Teams {
			if t == c.Value {
				return true
			}
		}
		return false
	case CriteriaMVP:
		return p.MVP
	case CriteriaDPOY:
		return p.DPOY
	case CriteriaROY:
		return p.ROY
	case CriteriaChampion:
		return p.Champion
	case CriteriaAllStar:
		return p.AllStar
	case CriteriaAllNBA:
		return p.AllNBA
	case CriteriaAllDefensive:
		return p.AllDefensive
	case CriteriaDecade:
		for _, d := range p.Decades {
			if d == c.Value {
				return true
			}
		}
		return false
	case CriteriaCountry:
		if c.Value == "international" {
			return p.Country != "USA"
		}
		return p.Country == c.Value
	case CriteriaPPG:
		return p.PPG >= parseThreshold(c.Value)
	case CriteriaRPG:
		return p.RPG >= parseThreshold(c.Value)
	case CriteriaAPG:
		return p.APG >= parseThreshold(c.Value)
	case CriteriaPosition:
		return p.Position == c.Value
	default:
		return false
	}
}

func parseThreshold(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}
