package experiments

import (
	"context"
	"fmt"
	"time"

	"hog/config"
	"hog/dice"
	"hog/engine"
	"hog/experiments/metrics"
	"hog/game"
	"hog/meta"
	"hog/strategy"
	"hog/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// RollAverages returns the average turn score for each roll count
// 1..MAX_ROLLS, index 0 holding one roll.
func RollAverages(d dice.Dice, numSamples int) ([]float64, error) {
	averagedTurn := MakeAveraged(func(numRolls int) (int, error) {
		return game.TakeTurn(numRolls, 0, d)
	}, numSamples)

	averages := make([]float64, 0, meta.MAX_ROLLS)
	for numRolls := 1; numRolls <= meta.MAX_ROLLS; numRolls++ {
		average, err := averagedTurn(numRolls)
		if err != nil {
			return nil, err
		}
		averages = append(averages, average)
	}
	return averages, nil
}

// MaxScoringNumRolls returns the number of dice (1 to 10) that gives the
// highest average turn score. Ties keep the lower number of dice.
func MaxScoringNumRolls(d dice.Dice, numSamples int) (int, error) {
	averages, err := RollAverages(d, numSamples)
	if err != nil {
		return 0, err
	}
	return bestNumRolls(averages), nil
}

func bestNumRolls(averages []float64) int {
	best, bestAverage := 1, 0.0
	for i, average := range averages {
		if bestAverage < average {
			best, bestAverage = i+1, average
		}
	}
	return best
}

type pairing struct {
	strategy0, strategy1 game.Strategy
	seat                 int // seat of the strategy under test
}

// AverageWinRate returns the win rate of strategy against baseline,
// averaged over playing first and playing second.
func AverageWinRate(strategy, baseline game.Strategy, numSamples int, options ...engine.Option) (float64, error) {
	rates, err := winRates(strategy, baseline, numSamples, options...)
	if err != nil {
		return 0, err
	}
	return rates.average(), nil
}

type seatRates struct {
	asPlayer0 float64
	asPlayer1 float64
	outcomes  []float64 // 1 for each game the strategy won, 0 otherwise
}

func (r seatRates) average() float64 {
	return (r.asPlayer0 + r.asPlayer1) / 2
}

func winRates(strategy, baseline game.Strategy, numSamples int, options ...engine.Option) (seatRates, error) {
	rates := seatRates{outcomes: make([]float64, 0, 2*max(numSamples, 0))}
	averagedWinner := MakeAveraged(func(p pairing) (int, error) {
		winner, err := engine.Winner(p.strategy0, p.strategy1, options...)
		if err != nil {
			return 0, err
		}
		won := 0.0
		if winner == p.seat {
			won = 1
		}
		rates.outcomes = append(rates.outcomes, won)
		return winner, nil
	}, numSamples)

	lossesAsPlayer0, err := averagedWinner(pairing{strategy, baseline, 0})
	if err != nil {
		return seatRates{}, fmt.Errorf("playing first: %w", err)
	}
	winsAsPlayer1, err := averagedWinner(pairing{baseline, strategy, 1})
	if err != nil {
		return seatRates{}, fmt.Errorf("playing second: %w", err)
	}
	rates.asPlayer0, rates.asPlayer1 = 1-lossesAsPlayer0, winsAsPlayer1
	return rates, nil
}

type Matchup struct {
	Name     string
	Strategy game.Strategy
	Baseline game.Strategy
}

type MatchupResult struct {
	Name      string
	AsPlayer0 float64
	AsPlayer1 float64
	WinRate   float64
	StdError  float64 // standard error of WinRate over all games played
	Games     []metrics.GameMetric
}

type TournamentOptions struct {
	NumSamples  int
	Goal        int
	Seed        uint64
	Goroutines  int
	RecordGames bool
}

// RunTournament plays every matchup on its own goroutine with its own
// seeded dice. Results are returned in matchup order.
func RunTournament(ctx context.Context, matchUps []Matchup, opts TournamentOptions) ([]MatchupResult, error) {
	results := make([]MatchupResult, len(matchUps))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Goroutines > 0 {
		g.SetLimit(opts.Goroutines)
	}

	for i, matchup := range matchUps {
		i, matchup := i, matchup
		seed := opts.Seed + uint64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Info().Msgf("starting matchup %d of %d: %s", i+1, len(matchUps), matchup.Name)

			result, err := runMatchup(matchup, seed, opts)
			if err != nil {
				return fmt.Errorf("matchup %s: %w", matchup.Name, err)
			}
			results[i] = result

			log.Info().Msgf("completed matchup %d of %d: %s win rate %.4f +/- %.4f", i+1, len(matchUps), matchup.Name, result.WinRate, result.StdError)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runMatchup(matchup Matchup, seed uint64, opts TournamentOptions) (MatchupResult, error) {
	if opts.Goal < 1 {
		return MatchupResult{}, fmt.Errorf("goal must be positive, got %d", opts.Goal)
	}
	if err := game.CheckStrategy(matchup.Strategy, opts.Goal); err != nil {
		return MatchupResult{}, err
	}
	if err := game.CheckStrategy(matchup.Baseline, opts.Goal); err != nil {
		return MatchupResult{}, fmt.Errorf("baseline: %w", err)
	}

	rng := dice.NewSource(seed)
	options := []engine.Option{
		engine.WithGoal(opts.Goal),
		engine.WithDice(dice.New(6, rng), dice.New(4, rng)),
	}
	var recorder *metrics.Recorder
	if opts.RecordGames {
		recorder = metrics.NewRecorder()
		options = append(options, engine.WithMetrics(recorder))
	}

	rates, err := winRates(matchup.Strategy, matchup.Baseline, opts.NumSamples, options...)
	if err != nil {
		return MatchupResult{}, err
	}
	_, stdError := utils.MeanStdError(rates.outcomes)

	result := MatchupResult{
		Name:      matchup.Name,
		AsPlayer0: rates.asPlayer0,
		AsPlayer1: rates.asPlayer1,
		WinRate:   rates.average(),
		StdError:  stdError,
	}
	if recorder != nil {
		result.Games = recorder.Games()
	}
	return result, nil
}

// RunExperiments runs the strategy experiments described by cfg, logs
// the results and, when cfg.OutputDir is set, stores them on disk.
func RunExperiments(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	start := time.Now()

	log.Info().Msgf("starting %s experiment with seed %d...", cfg.Name, cfg.Seed)

	rng := dice.NewSource(cfg.Seed)
	six := dice.New(6, rng)
	rollDice := []struct {
		name   string
		source dice.Dice
	}{
		{"six_sided", six},
		{"rerolled_six_sided", dice.Reroll(six)},
		{"four_sided", dice.New(4, rng)},
	}

	rollRecords := []metrics.RollRecord{}
	for _, rd := range rollDice {
		averages, err := RollAverages(rd.source, cfg.NumSamples)
		if err != nil {
			return err
		}
		for i, average := range averages {
			rollRecords = append(rollRecords, metrics.RollRecord{Dice: rd.name, NumRolls: i + 1, Average: average})
		}
		log.Info().Msgf("max scoring num rolls for %s dice: %d", rd.name, bestNumRolls(averages))
	}

	baseline, err := strategy.Lookup(cfg.Baseline)
	if err != nil {
		return err
	}
	matchUps := []Matchup{}
	for _, name := range cfg.Strategies {
		s, err := strategy.Lookup(name)
		if err != nil {
			return err
		}
		matchUps = append(matchUps, Matchup{Name: name, Strategy: s, Baseline: baseline})
	}

	results, err := RunTournament(ctx, matchUps, TournamentOptions{
		NumSamples:  cfg.NumSamples,
		Goal:        cfg.Goal,
		Seed:        cfg.Seed + 1,
		Goroutines:  cfg.Goroutines,
		RecordGames: cfg.RecordGames,
	})
	if err != nil {
		return err
	}

	winRateRecords := []metrics.WinRateRecord{}
	gameRecords := []metrics.GameRecord{}
	for _, result := range results {
		log.Info().
			Float64("std_error", result.StdError).
			Msgf("%s win rate against %s: %.4f", result.Name, cfg.Baseline, result.WinRate)
		winRateRecords = append(winRateRecords, metrics.WinRateRecord{
			Strategy:  result.Name,
			Baseline:  cfg.Baseline,
			AsPlayer0: result.AsPlayer0,
			AsPlayer1: result.AsPlayer1,
			WinRate:   result.WinRate,
			StdError:  result.StdError,
		})
		for _, gm := range result.Games {
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         len(gameRecords) + 1,
				Matchup:    result.Name,
				GameMetric: gm,
			})
		}
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.OutputDir == "" {
		return nil
	}
	return writeResults(cfg, start, rollRecords, winRateRecords, gameRecords)
}

func writeResults(cfg config.Config, start time.Time, rolls []metrics.RollRecord, winRates []metrics.WinRateRecord, games []metrics.GameRecord) error {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteSetup(cfg, cfg.Seed, start, time.Now()); err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	if err := writer.WriteRollRecords(rolls); err != nil {
		return fmt.Errorf("failed to write roll records: %w", err)
	}
	log.Info().Msg("stored roll records")

	if err := writer.WriteWinRateRecords(winRates); err != nil {
		return fmt.Errorf("failed to write win rate records: %w", err)
	}
	log.Info().Msg("stored win rate records")

	if cfg.RecordGames {
		if err := writer.WriteGameRecords(games); err != nil {
			return fmt.Errorf("failed to write game records: %w", err)
		}
		log.Info().Msg("stored game records")
	}

	log.Info().Msgf("results written to %s", writer.Dir())
	return nil
}
