package matchmaking

// Detail view dimensions
const (
	DetailMatchHeight = 140.0
	DetailGap         = 32.0
)

// LayoutMatch is a match positioned in its round column.
type LayoutMatch struct {
	Match           *Match
	Top             float64
	ConnectorLength float64
}

// HasConnector reports whether a line leads to the next round.
func (l LayoutMatch) HasConnector() bool {
	return l.ConnectorLength > 0
}

// LayoutRound is one column of the bracket drawing.
type LayoutRound struct {
	Number  int
	Label   string
	Matches []LayoutMatch
}

// Layout positions every match of a bracket.
type Layout struct {
	MatchHeight float64
	Gap         float64
	TotalHeight float64
	Rounds      []LayoutRound
}

// GroupRounds splits matches ordered by round and position into rounds.
func GroupRounds(matches []*Match, totalRounds int) []LayoutRound {
	var rounds []LayoutRound
	for _, m := range matches {
		if len(rounds) == 0 || rounds[len(rounds)-1].Number != m.RoundNumber {
			rounds = append(rounds, LayoutRound{Number: m.RoundNumber, Label: m.RoundLabel(totalRounds)})
		}
		last := &rounds[len(rounds)-1]
		last.Matches = append(last.Matches, LayoutMatch{Match: m})
	}
	return rounds
}

// ComputeLayout places matches so that each match sits centred between its
// two source matches. Round i spans 2^i units of matchHeight+gap.
func ComputeLayout(matches []*Match, totalRounds int, matchHeight, gap float64) Layout {
	rounds := GroupRounds(matches, totalRounds)
	unit := matchHeight + gap
	maxBottom := matchHeight

	for i := range rounds {
		span := float64(int(1) << i)
		offset := (span - 1) / 2 * unit
		connector := 0.0
		if i < len(rounds)-1 {
			connector = unit * span / 2
		}
		for j := range rounds[i].Matches {
			top := float64(j)*unit*span + offset
			if bottom := top + matchHeight + connector; bottom > maxBottom {
				maxBottom = bottom
			}
			rounds[i].Matches[j].Top = top
			rounds[i].Matches[j].ConnectorLength = connector
		}
	}

	return Layout{
		MatchHeight: matchHeight,
		Gap:         gap,
		TotalHeight: maxBottom + gap,
		Rounds:      rounds,
	}
}
