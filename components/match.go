package components

import "github.com/yohamta/donburi"

// FighterScore tracks one fighter's match statistics
type FighterScore struct {
	Name      string
	HitsDealt int
	Damage    float64
	KOs       int
}

// MatchData stores the current duel state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Ended  bool
	Winner string // empty until a fighter is knocked out
	Ticks  int    // ticks played; zero means unlimited
	Limit  int
	Scores []FighterScore
}

var Match = donburi.NewComponentType[MatchData]()

// Score returns the score for a fighter, creating it if needed
func (m *MatchData) Score(name string) *FighterScore {
	for i := range m.Scores {
		if m.Scores[i].Name == name {
			return &m.Scores[i]
		}
	}
	m.Scores = append(m.Scores, FighterScore{Name: name})
	return &m.Scores[len(m.Scores)-1]
}
