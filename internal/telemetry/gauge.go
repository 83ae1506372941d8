// Package telemetry feeds the admin dashboard's stats HUD. The numbers
// are simulated: there is no real metrics pipeline behind them.
package telemetry

import (
	"math/rand"
	"sync"
	"time"
)

// Snapshot is one reading of the simulated system gauges.
type Snapshot struct {
	Uptime       string `json:"uptime"`
	CoreLoad     int    `json:"core_load"`
	Deployments  int    `json:"deployments"`
	SyncStatus   string `json:"sync_status"`
	Availability string `json:"availability"`
}

// Gauge produces simulated load readings. CoreLoad random-walks inside
// a plausible band so consecutive samples look related rather than
// jumping around.
type Gauge struct {
	mu          sync.Mutex
	started     time.Time
	load        int
	rng         *rand.Rand
	deployments func() int
}

// NewGauge creates a gauge. deployments reports the current project
// count for the HUD tile.
func NewGauge(deployments func() int) *Gauge {
	return &Gauge{
		started:     time.Now(),
		load:        14,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		deployments: deployments,
	}
}

// Sample returns the next reading.
func (g *Gauge) Sample() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Random walk of at most ±4, clamped to 5..95.
	g.load += g.rng.Intn(9) - 4
	if g.load < 5 {
		g.load = 5
	}
	if g.load > 95 {
		g.load = 95
	}

	return Snapshot{
		Uptime:       time.Since(g.started).Round(time.Second).String(),
		CoreLoad:     g.load,
		Deployments:  g.deployments(),
		SyncStatus:   "Active",
		Availability: "99.98%",
	}
}
