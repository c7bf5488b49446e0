package statistics

import (
	"errors"

	"github.com/markusressel/lednice/internal/protocol"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/prometheus/client_golang/prometheus"
)

const dispatchSubsystem = "dispatch"

const (
	causeWrongRequestClass   = "wrong_request_class"
	causeUnrecognizedCommand = "unrecognized_command"
	causeIndexOutOfRange     = "index_out_of_range"
	causePeripheral          = "peripheral"
)

type dispatchKey struct {
	command string
	result  string
}

// DispatchStatistics counts handled requests, it is fed by a protocol.Listener
type DispatchStatistics struct {
	requests cmap.ConcurrentMap[string, uint64]
	failures cmap.ConcurrentMap[string, uint64]
	keys     cmap.ConcurrentMap[string, dispatchKey]
}

func NewDispatchStatistics() *DispatchStatistics {
	return &DispatchStatistics{
		requests: cmap.New[uint64](),
		failures: cmap.New[uint64](),
		keys:     cmap.New[dispatchKey](),
	}
}

// Listener returns a protocol.Listener that records every result
func (s *DispatchStatistics) Listener() protocol.Listener {
	return func(request protocol.Request, result protocol.Result) {
		s.Record(request, result)
	}
}

func (s *DispatchStatistics) Record(request protocol.Request, result protocol.Result) {
	key := dispatchKey{
		command: request.Command().String(),
		result:  result.Kind.String(),
	}
	id := key.command + "/" + key.result
	s.keys.SetIfAbsent(id, key)
	s.requests.Upsert(id, 1, increment)

	if result.Cause != nil {
		s.failures.Upsert(causeLabel(result.Cause), 1, increment)
	}
}

// RequestCount returns how often command was answered with the given result kind
func (s *DispatchStatistics) RequestCount(command protocol.Command, kind protocol.ResultKind) uint64 {
	count, _ := s.requests.Get(command.String() + "/" + kind.String())
	return count
}

// FailureCount returns how often requests were ignored, or the peripheral failed, for the given cause
func (s *DispatchStatistics) FailureCount(cause error) uint64 {
	count, _ := s.failures.Get(causeLabel(cause))
	return count
}

func increment(exist bool, valueInMap uint64, newValue uint64) uint64 {
	if !exist {
		return newValue
	}
	return valueInMap + newValue
}

func causeLabel(cause error) string {
	switch {
	case errors.Is(cause, protocol.ErrWrongRequestClass):
		return causeWrongRequestClass
	case errors.Is(cause, protocol.ErrUnrecognizedCommand):
		return causeUnrecognizedCommand
	case errors.Is(cause, protocol.ErrIndexOutOfRange):
		return causeIndexOutOfRange
	}
	return causePeripheral
}

type DispatchCollector struct {
	statistics *DispatchStatistics

	requests *prometheus.Desc
	failures *prometheus.Desc
}

func NewDispatchCollector(statistics *DispatchStatistics) *DispatchCollector {
	return &DispatchCollector{
		statistics: statistics,
		requests: prometheus.NewDesc(prometheus.BuildFQName(namespace, dispatchSubsystem, "requests_total"),
			"Number of handled control requests",
			[]string{"command", "result"}, nil,
		),
		failures: prometheus.NewDesc(prometheus.BuildFQName(namespace, dispatchSubsystem, "failures_total"),
			"Number of ignored requests and failed PWM writes by cause",
			[]string{"cause"}, nil,
		),
	}
}

func (collector *DispatchCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.requests
	ch <- collector.failures
}

// Collect implements required collect function for all prometheus collectors
func (collector *DispatchCollector) Collect(ch chan<- prometheus.Metric) {
	for item := range collector.statistics.requests.IterBuffered() {
		key, ok := collector.statistics.keys.Get(item.Key)
		if !ok {
			continue
		}
		ch <- prometheus.MustNewConstMetric(collector.requests, prometheus.CounterValue, float64(item.Val), key.command, key.result)
	}
	for item := range collector.statistics.failures.IterBuffered() {
		ch <- prometheus.MustNewConstMetric(collector.failures, prometheus.CounterValue, float64(item.Val), item.Key)
	}
}
