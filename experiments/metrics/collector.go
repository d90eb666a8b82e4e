package metrics

import (
	"time"

	"hog/game"
)

type GameMetric struct {
	Turns          int
	PorkChops      int
	FreeBaconTurns int
	HogWildTurns   int
	Mirrors        int
	Score0         int
	Score1         int
	Winner         int // Player index
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

type Collector interface {
	Start()
	AddTurn(turn game.Turn)
	Complete(score0, score1 int) GameMetric
}

type collector struct {
	startTime time.Time
	metric    GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.metric = GameMetric{StartTime: m.startTime}
}

func (m *collector) AddTurn(turn game.Turn) {
	m.metric.Turns++
	switch turn.Type {
	case game.PorkChopAction:
		m.metric.PorkChops++
	case game.FreeBaconAction:
		m.metric.FreeBaconTurns++
	}
	if turn.HogWild {
		m.metric.HogWildTurns++
	}
	if turn.Mirrored {
		m.metric.Mirrors++
	}
}

func (m *collector) Complete(score0, score1 int) GameMetric {
	metric := m.metric
	metric.Score0 = score0
	metric.Score1 = score1
	metric.Winner = 1
	if score0 > score1 {
		metric.Winner = 0
	}
	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                                 {}
func (m *dummyCollector) AddTurn(turn game.Turn)                 {}
func (m *dummyCollector) Complete(score0, score1 int) GameMetric { return GameMetric{} }

// Recorder is a Collector that keeps every completed game.
// It is not safe for concurrent games.
type Recorder struct {
	collector
	games []GameMetric
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Complete(score0, score1 int) GameMetric {
	metric := r.collector.Complete(score0, score1)
	r.games = append(r.games, metric)
	return metric
}

func (r *Recorder) Games() []GameMetric {
	return r.games
}
