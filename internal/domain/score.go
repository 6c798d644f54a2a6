package domain

// ScoreBoard counts rounds won per player. It survives Reset; a reconfigured
// table starts from a fresh Game and therefore from zero.
type ScoreBoard struct {
	wins [2]int
}

func (s ScoreBoard) Wins(player PlayerID) int {
	if !player.Valid() {
		return 0
	}
	return s.wins[player.index()]
}

func (s *ScoreBoard) increment(player PlayerID) {
	if player.Valid() {
		s.wins[player.index()]++
	}
}

func (s *ScoreBoard) decrement(player PlayerID) {
	if player.Valid() && s.wins[player.index()] > 0 {
		s.wins[player.index()]--
	}
}

func (s ScoreBoard) Total() int {
	return s.wins[0] + s.wins[1]
}
