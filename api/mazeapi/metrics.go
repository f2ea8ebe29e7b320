package mazeapi

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	created  prometheus.Counter
	moves    *prometheus.CounterVec
	finished *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "maze_emulator",
			Name:      "mazes_created_total",
			Help:      "Number of mazes created.",
		}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "maze_emulator",
			Name:      "moves_total",
			Help:      "Number of pony moves processed, by direction.",
		}, []string{"direction"}),
		finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "maze_emulator",
			Name:      "mazes_finished_total",
			Help:      "Number of mazes that reached a terminal state, by state.",
		}, []string{"state"}),
	}
	if reg != nil {
		reg.MustRegister(m.created, m.moves, m.finished)
	}
	return m
}
