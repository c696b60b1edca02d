package metrics

import (
	"sync/atomic"
	"time"

	"morris/game"
)

// PlyMetric describes one decision taken during a game.
type PlyMetric struct {
	Step     int
	Player   int
	Kind     game.PlyKind
	Ply      string
	Duration time.Duration // Time the agent took to decide
	Retries  int           // Illegal plies rejected before this one
}

type GameMetric struct {
	ID             string
	StartingPlayer int
	Winner         int // 0 when cut off before a winner
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalPlies     int
	Captures       [2]int
}

type Collector interface {
	Start(id string, startingPlayer int)
	AddPly(metric PlyMetric)
	AddRetry()
	Complete(winner int) (GameMetric, []PlyMetric)
}

type collector struct {
	id             string
	startingPlayer int
	startTime      time.Time
	retries        atomic.Int32
	plies          []PlyMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(id string, startingPlayer int) {
	c.id = id
	c.startingPlayer = startingPlayer
	c.startTime = time.Now()
	c.retries.Store(0)
	c.plies = nil
}

// AddRetry counts an illegal ply the next recorded ply had to replace.
func (c *collector) AddRetry() {
	c.retries.Add(1)
}

func (c *collector) AddPly(metric PlyMetric) {
	metric.Step = len(c.plies) + 1
	metric.Retries = int(c.retries.Swap(0))
	c.plies = append(c.plies, metric)
}

func (c *collector) Complete(winner int) (GameMetric, []PlyMetric) {
	end := time.Now()
	gm := GameMetric{
		ID:             c.id,
		StartingPlayer: c.startingPlayer,
		Winner:         winner,
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		TotalPlies:     len(c.plies),
	}
	for _, ply := range c.plies {
		if ply.Kind == game.MillPly && (ply.Player == 1 || ply.Player == 2) {
			gm.Captures[ply.Player-1]++
		}
	}
	return gm, c.plies
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(id string, startingPlayer int) {}
func (c *dummyCollector) AddPly(metric PlyMetric)             {}
func (c *dummyCollector) AddRetry()                           {}
func (c *dummyCollector) Complete(winner int) (GameMetric, []PlyMetric) {
	return GameMetric{Winner: winner}, nil
}
