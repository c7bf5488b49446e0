package statistics

import (
	"strconv"

	"github.com/markusressel/lednice/internal/protocol"
	"github.com/prometheus/client_golang/prometheus"
)

const ledSubsystem = "led"

// DutyReader reads back the compare value of a PWM channel
type DutyReader interface {
	GetDuty(channel int) (uint8, error)
}

// LedCollector exports the state of every LED. The brightness register is read through the handler
// like any other client, the duty is read back from the PWM peripheral.
type LedCollector struct {
	handler  protocol.Handler
	output   DutyReader
	ledCount int
	history  *History

	brightness    *prometheus.Desc
	brightnessAvg *prometheus.Desc
	duty          *prometheus.Desc
	maxBrightness *prometheus.Desc
}

func NewLedCollector(handler protocol.Handler, output DutyReader, ledCount int, history *History) *LedCollector {
	labels := []string{"id", "name"}
	return &LedCollector{
		handler:  handler,
		output:   output,
		ledCount: ledCount,
		history:  history,
		brightness: prometheus.NewDesc(prometheus.BuildFQName(namespace, ledSubsystem, "brightness"),
			"Current brightness of the LED",
			labels, nil,
		),
		brightnessAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, ledSubsystem, "brightness_avg"),
			"Average of the recently written brightness values of the LED",
			labels, nil,
		),
		duty: prometheus.NewDesc(prometheus.BuildFQName(namespace, ledSubsystem, "duty"),
			"Current PWM compare value of the LED",
			labels, nil,
		),
		maxBrightness: prometheus.NewDesc(prometheus.BuildFQName(namespace, ledSubsystem, "max_brightness"),
			"Maximum brightness of the LED",
			labels, nil,
		),
	}
}

func (collector *LedCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.brightness
	ch <- collector.brightnessAvg
	ch <- collector.duty
	ch <- collector.maxBrightness
}

// Collect implements required collect function for all prometheus collectors
func (collector *LedCollector) Collect(ch chan<- prometheus.Metric) {
	for index := 0; index < collector.ledCount; index++ {
		infoResult := collector.handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandGetLedInfo, 0, uint16(index)))
		brightnessResult := collector.handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandGetLedBrightness, 0, uint16(index)))

		info, infoOk := infoResult.Reply.(protocol.LedInfoReply)
		brightness, brightnessOk := brightnessResult.Reply.(protocol.BrightnessReply)
		if !infoOk || !brightnessOk {
			continue
		}

		id := strconv.Itoa(index)
		name := info.LedName.String()
		ch <- prometheus.MustNewConstMetric(collector.brightness, prometheus.GaugeValue, float64(brightness.Brightness), id, name)
		if duty, err := collector.output.GetDuty(index); err == nil {
			ch <- prometheus.MustNewConstMetric(collector.duty, prometheus.GaugeValue, float64(duty), id, name)
		}
		ch <- prometheus.MustNewConstMetric(collector.maxBrightness, prometheus.GaugeValue, float64(info.MaxBrightness), id, name)
		if collector.history != nil {
			ch <- prometheus.MustNewConstMetric(collector.brightnessAvg, prometheus.GaugeValue, collector.history.Avg(index), id, name)
		}
	}
}
