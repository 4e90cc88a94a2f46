package models

import "strings"

// GameType identifies the game a bracket is played in. Ratings are tracked per game type
type GameType int32

const (
	GameType_MARIO_KART_WORLD       GameType = 0
	GameType_MARIO_KART_8           GameType = 1
	GameType_SMASH_ULTIMATE_SINGLES GameType = 2
	GameType_SMASH_ULTIMATE_DOUBLES GameType = 3
)

var gameTypeNames = map[GameType]string{
	GameType_MARIO_KART_WORLD:       "MARIO_KART_WORLD",
	GameType_MARIO_KART_8:           "MARIO_KART_8",
	GameType_SMASH_ULTIMATE_SINGLES: "SMASH_ULTIMATE_SINGLES",
	GameType_SMASH_ULTIMATE_DOUBLES: "SMASH_ULTIMATE_DOUBLES",
}

func (g GameType) String() string {
	if name, ok := gameTypeNames[g]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseGameType looks up a game type by its tag, case insensitive
func ParseGameType(tag string) (GameType, error) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	for g, name := range gameTypeNames {
		if name == tag {
			return g, nil
		}
	}
	return 0, NotFoundf("game type %q", tag)
}

// Rules are the static parameters for a game type
type Rules struct {
	// BranchingFactor is the most entrants that can play in one match set
	BranchingFactor int
	// AdvancementCount is how many winners move on from a match set
	AdvancementCount int
	TeamSize         int
}

// Fanin is the number of match sets whose winners merge into one match set of the next round
func (r Rules) Fanin() int {
	return r.BranchingFactor / r.AdvancementCount
}

var rulesTable = map[GameType]Rules{
	GameType_MARIO_KART_WORLD:       {BranchingFactor: 4, AdvancementCount: 2, TeamSize: 1},
	GameType_MARIO_KART_8:           {BranchingFactor: 4, AdvancementCount: 2, TeamSize: 1},
	GameType_SMASH_ULTIMATE_SINGLES: {BranchingFactor: 2, AdvancementCount: 1, TeamSize: 1},
	GameType_SMASH_ULTIMATE_DOUBLES: {BranchingFactor: 2, AdvancementCount: 1, TeamSize: 2},
}

// RulesFor returns the rules of a game type
func RulesFor(g GameType) (Rules, error) {
	r, ok := rulesTable[g]
	if !ok {
		return Rules{}, NotFoundf("rules for game type %d", g)
	}
	return r, nil
}

// GameTypes lists every known game type
func GameTypes() []GameType {
	return []GameType{
		GameType_MARIO_KART_WORLD,
		GameType_MARIO_KART_8,
		GameType_SMASH_ULTIMATE_SINGLES,
		GameType_SMASH_ULTIMATE_DOUBLES,
	}
}
