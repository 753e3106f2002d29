package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	itemsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "freshtrack_items_created_total",
		Help: "Number of pantry items created over the API.",
	})
	itemsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "freshtrack_items_deleted_total",
		Help: "Number of pantry items deleted over the API.",
	})
	wasteEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "freshtrack_waste_events_total",
		Help: "Number of waste events recorded when items leave the pantry.",
	})
)
