package metrics

import (
	"sync/atomic"
	"time"
)

// TurnMetric describes one agent turn.
type TurnMetric struct {
	Turn     int
	Side     string
	Duration time.Duration
	Actions  int // commands the game accepted
	Rejected int // candidate commands the game refused
}

type GameMetric struct {
	Seed               int64
	Winner             string // "" when the turn cap was hit
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
	Turns              int
	SelfLifePoints     int
	OpponentLifePoints int
}

type Collector interface {
	Start(turn int, side string)
	AddAction()
	AddRejected()
	Complete() TurnMetric
}

type collector struct {
	turn      int
	side      string
	startTime time.Time
	actions   atomic.Int32
	rejected  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(turn int, side string) {
	m.startTime = time.Now()
	m.turn = turn
	m.side = side
	m.actions.Store(0)
	m.rejected.Store(0)
}

func (m *collector) AddAction() {
	m.actions.Add(1)
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) Complete() TurnMetric {
	return TurnMetric{
		Turn:     m.turn,
		Side:     m.side,
		Duration: time.Since(m.startTime),
		Actions:  int(m.actions.Load()),
		Rejected: int(m.rejected.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(turn int, side string) {}
func (m *dummyCollector) AddAction()                  {}
func (m *dummyCollector) AddRejected()                {}
func (m *dummyCollector) Complete() TurnMetric        { return TurnMetric{} }
