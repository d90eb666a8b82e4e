package engine

import (
	"errors"
	"fmt"

	"hog/dice"
	"hog/experiments/metrics"
	"hog/game"
	"hog/meta"

	"github.com/rs/zerolog/log"
)

var ErrTurnLimit = errors.New("turn limit reached before either player won")

type Option func(e *Engine)

func WithScores(score0, score1 int) Option {
	return func(e *Engine) {
		e.State.Scores = [game.NumPlayers]int{score0, score1}
	}
}

func WithGoal(goal int) Option {
	return func(e *Engine) {
		e.State.Goal = goal
	}
}

// WithDice sets the base dice used when dice are not swapped (six) and
// while swapped by Pork Chop (four).
func WithDice(six, four dice.Dice) Option {
	return func(e *Engine) {
		if six != nil {
			e.six = six
		}
		if four != nil {
			e.four = four
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

type Engine struct {
	State      game.State
	Strategies [game.NumPlayers]game.Strategy
	Turns      []game.Turn
	Metric     metrics.GameMetric
	six        dice.Dice
	four       dice.Dice
	metrics    metrics.Collector
	maxTurns   int
}

func LocalEngine(strategy0, strategy1 game.Strategy, options ...Option) *Engine {
	if strategy0 == nil || strategy1 == nil {
		panic("both players need a strategy")
	}
	e := &Engine{ // Default values
		State:      game.NewState(0, 0, meta.GOAL_SCORE),
		Strategies: [game.NumPlayers]game.Strategy{strategy0, strategy1},
		six:        dice.SixSided,
		four:       dice.FourSided,
		metrics:    metrics.NewDummyCollector(),
		maxTurns:   meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	if e.State.Goal <= 0 {
		panic(fmt.Sprintf("goal must be positive, got %d", e.State.Goal))
	}
	if e.State.Scores[0] < 0 || e.State.Scores[1] < 0 {
		panic(fmt.Sprintf("starting scores must be non-negative, got %d-%d", e.State.Scores[0], e.State.Scores[1]))
	}
	return e
}

// Run plays turns until either score reaches the goal and returns the
// final scores, player 0's first.
func (e *Engine) Run() (int, int, error) {
	e.metrics.Start()
	log.Debug().Msgf("game starting at %d-%d with goal %d", e.State.Scores[0], e.State.Scores[1], e.State.Goal)

	for !e.State.IsOver() {
		if len(e.Turns) >= e.maxTurns {
			return e.State.Scores[0], e.State.Scores[1], fmt.Errorf("%w: %d turns", ErrTurnLimit, e.maxTurns)
		}

		score, opponentScore := e.State.Score()
		action := e.Strategies[e.State.Player](score, opponentScore)

		next, turn, err := e.State.Play(action, e.six, e.four)
		if err != nil {
			return e.State.Scores[0], e.State.Scores[1], err
		}
		e.State = next
		e.Turns = append(e.Turns, turn)
		e.metrics.AddTurn(turn)

		log.Debug().
			Int("player", turn.Player).
			Str("action", turn.Type.String()).
			Int("rolls", max(turn.Action, 0)).
			Int("points", turn.Points).
			Bool("hog_wild", turn.HogWild).
			Bool("mirrored", turn.Mirrored).
			Msgf("score %d-%d", turn.Score0, turn.Score1)
	}

	score0, score1 := e.State.Scores[0], e.State.Scores[1]
	e.Metric = e.metrics.Complete(score0, score1)
	return score0, score1, nil
}

// Play simulates a game and returns the final scores of both players,
// with player 0's score first.
func Play(strategy0, strategy1 game.Strategy, options ...Option) (int, int, error) {
	return LocalEngine(strategy0, strategy1, options...).Run()
}

// Winner returns 0 if strategy0 finishes strictly ahead of strategy1 and
// 1 otherwise, so a tie counts as a loss for player 0.
func Winner(strategy0, strategy1 game.Strategy, options ...Option) (int, error) {
	score0, score1, err := Play(strategy0, strategy1, options...)
	if err != nil {
		return 0, err
	}
	if score0 > score1 {
		return 0, nil
	}
	return 1, nil
}
