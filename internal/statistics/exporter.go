package statistics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "lednice"
)

// Register registers the given collectors, prometheus.DefaultRegisterer is used if registerer is nil
func Register(registerer prometheus.Registerer, collectors ...prometheus.Collector) error {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return err
		}
	}
	return nil
}
