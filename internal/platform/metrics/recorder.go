package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/events"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "taskboard"

// StatsFunc reports the current task totals; it is called on every scrape.
type StatsFunc func(ctx context.Context) (domain.TaskStats, error)

// Recorder counts task lifecycle events and reports live task totals.
// It implements events.EventHandler so it can be registered on an emitter.
type Recorder struct {
	eventsTotal *prometheus.CounterVec
	tasks       *tasksCollector
}

// Ensure Recorder implements events.EventHandler
var _ events.EventHandler = (*Recorder)(nil)

// NewRecorder registers the task metrics on reg. A nil reg uses
// prometheus.DefaultRegisterer; an empty namespace uses DefaultNamespace.
// stats may be nil, in which case the task gauges are not exported.
func NewRecorder(namespace string, reg prometheus.Registerer, stats StatsFunc, logger *slog.Logger) (*Recorder, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := &Recorder{
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_events_total",
			Help:      "Count of task lifecycle events by type.",
		}, []string{"type"}),
	}

	// Pre-create the series so they are exported as 0 before the first event
	for _, t := range []events.EventType{events.TaskCreated, events.TaskToggled, events.TaskDeleted} {
		r.eventsTotal.WithLabelValues(string(t))
	}

	collectors := []prometheus.Collector{r.eventsTotal}
	if stats != nil {
		r.tasks = newTasksCollector(namespace, stats, logger.With("component", "metrics"))
		collectors = append(collectors, r.tasks)
	}

	for i, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				if i == 0 {
					if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
						r.eventsTotal = existing
					}
				}
				continue
			}
			return nil, fmt.Errorf("register task metric: %w", err)
		}
	}

	return r, nil
}

// HandleEvent implements events.EventHandler.
func (r *Recorder) HandleEvent(ctx context.Context, event *events.TaskEvent) error {
	if event == nil {
		return nil
	}
	r.eventsTotal.WithLabelValues(string(event.Type)).Inc()
	return nil
}

// tasksCollector exports the current number of open and completed tasks.
// Values are read from StatsFunc at collection time, so they are never stale.
type tasksCollector struct {
	desc   *prometheus.Desc
	stats  StatsFunc
	logger *slog.Logger
}

func newTasksCollector(namespace string, stats StatsFunc, logger *slog.Logger) *tasksCollector {
	return &tasksCollector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "tasks"),
			"Number of tasks currently stored, by completion state.",
			[]string{"state"},
			nil,
		),
		stats:  stats,
		logger: logger,
	}
}

// Describe implements prometheus.Collector.
func (c *tasksCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *tasksCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.stats(context.Background())
	if err != nil {
		c.logger.Error("failed to read task stats for metrics", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(stats.Open()), "open")
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(stats.Completed), "completed")
}
