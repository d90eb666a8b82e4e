package game

// ActionType classifies the action a strategy returned.
type ActionType int

const (
	RollAction ActionType = iota
	FreeBaconAction
	PorkChopAction
)

func TypeOf(action int) ActionType {
	switch action {
	case PorkChop:
		return PorkChopAction
	case FreeBaconRolls:
		return FreeBaconAction
	default:
		return RollAction
	}
}

func (t ActionType) String() string {
	switch t {
	case PorkChopAction:
		return "pork_chop"
	case FreeBaconAction:
		return "free_bacon"
	default:
		return "roll"
	}
}
