package statistics

import (
	"errors"
	"strings"
	"testing"

	"github.com/markusressel/lednice/internal/device"
	"github.com/markusressel/lednice/internal/protocol"
	"github.com/markusressel/lednice/internal/pwm"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func createHandler(t *testing.T) (*protocol.SerializedHandler, *device.Store, *pwm.MemoryOutput) {
	store, err := device.NewStore("ds_simple", []device.LedInfo{
		{Name: device.NewName("led_1"), MaxBrightness: 255},
	})
	assert.NoError(t, err)
	output := pwm.NewMemoryOutput()
	dispatcher := protocol.NewDispatcher(store, output)
	return protocol.NewSerializedHandler(dispatcher), store, output
}

type failingDutyReader struct{}

func (failingDutyReader) GetDuty(channel int) (uint8, error) {
	return 0, errors.New("cmd output has no getDuty command")
}

func TestDispatchStatistics_Record(t *testing.T) {
	// GIVEN
	handler, _, _ := createHandler(t)
	statistics := NewDispatchStatistics()
	handler.AddListener(statistics.Listener())

	// WHEN
	handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandSetLedBrightness, 10, 0))
	handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandSetLedBrightness, 20, 0))
	handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandSetLedBrightness, 20, 7))
	handler.HandleRequest(protocol.NewVendorRequest(protocol.Command(9), 0, 0))
	handler.HandleRequest(protocol.Request{RequestType: protocol.RequestTypeClass})

	// THEN
	assert.Equal(t, uint64(2), statistics.RequestCount(protocol.CommandSetLedBrightness, protocol.ResultEmpty))
	assert.Equal(t, uint64(1), statistics.RequestCount(protocol.CommandSetLedBrightness, protocol.ResultIgnored))
	assert.Equal(t, uint64(0), statistics.RequestCount(protocol.CommandGetInfo, protocol.ResultReply))
	assert.Equal(t, uint64(1), statistics.FailureCount(protocol.ErrIndexOutOfRange))
	assert.Equal(t, uint64(1), statistics.FailureCount(protocol.ErrUnrecognizedCommand))
	assert.Equal(t, uint64(1), statistics.FailureCount(protocol.ErrWrongRequestClass))
}

func TestDispatchStatistics_PeripheralFailure(t *testing.T) {
	// GIVEN
	statistics := NewDispatchStatistics()
	result := protocol.Empty()
	result.Cause = errors.New("write failed")

	// WHEN
	statistics.Record(protocol.NewVendorRequest(protocol.CommandSetLedBrightness, 1, 0), result)

	// THEN
	assert.Equal(t, uint64(1), statistics.FailureCount(errors.New("any other error")))
}

func TestDispatchCollector(t *testing.T) {
	// GIVEN
	statistics := NewDispatchStatistics()
	statistics.Record(protocol.NewVendorRequest(protocol.CommandGetInfo, 0, 0), protocol.Replied(protocol.InfoReply{}))
	statistics.Record(protocol.NewVendorRequest(protocol.CommandGetLedInfo, 0, 3), protocol.Ignored(protocol.ErrIndexOutOfRange))
	collector := NewDispatchCollector(statistics)

	// WHEN
	expected := `
# HELP lednice_dispatch_requests_total Number of handled control requests
# TYPE lednice_dispatch_requests_total counter
lednice_dispatch_requests_total{command="get_info",result="reply"} 1
lednice_dispatch_requests_total{command="get_led_info",result="ignored"} 1
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected), "lednice_dispatch_requests_total")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 3, testutil.CollectAndCount(collector))
}

func TestHistory_Listener(t *testing.T) {
	// GIVEN
	handler, store, _ := createHandler(t)
	history := NewHistory(3)
	handler.AddListener(history.Listener(store))

	// WHEN
	for _, value := range []uint16{10, 20, 30, 40} {
		handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandSetLedBrightness, value, 0))
	}
	handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandSetLedBrightness, 99, 1))
	handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandGetLedBrightness, 0, 0))

	// THEN
	assert.Equal(t, []float64{20, 30, 40}, history.Values(0))
	assert.Equal(t, 30.0, history.Avg(0))
	assert.Empty(t, history.Values(1))
	assert.Equal(t, 0.0, history.Avg(1))
}

func TestHistory_ValuesIsACopy(t *testing.T) {
	// GIVEN
	history := NewHistory(5)
	history.Append(0, 1)

	// WHEN
	values := history.Values(0)
	values[0] = 100

	// THEN
	assert.Equal(t, []float64{1}, history.Values(0))
}

func TestLedCollector(t *testing.T) {
	// GIVEN
	handler, store, output := createHandler(t)
	history := NewHistory(10)
	handler.AddListener(history.Listener(store))
	handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandSetLedBrightness, 100, 0))
	handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandSetLedBrightness, 200, 0))
	collector := NewLedCollector(handler, output, store.LedCount(), history)

	// WHEN
	expected := `
# HELP lednice_led_brightness Current brightness of the LED
# TYPE lednice_led_brightness gauge
lednice_led_brightness{id="0",name="led_1"} 200
# HELP lednice_led_brightness_avg Average of the recently written brightness values of the LED
# TYPE lednice_led_brightness_avg gauge
lednice_led_brightness_avg{id="0",name="led_1"} 150
# HELP lednice_led_duty Current PWM compare value of the LED
# TYPE lednice_led_duty gauge
lednice_led_duty{id="0",name="led_1"} 55
# HELP lednice_led_max_brightness Maximum brightness of the LED
# TYPE lednice_led_max_brightness gauge
lednice_led_max_brightness{id="0",name="led_1"} 255
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected))

	// THEN
	assert.NoError(t, err)
}

func TestHistory_AvgOfPartiallyFilledWindow(t *testing.T) {
	// GIVEN
	history := NewHistory(100)

	// WHEN
	history.Append(0, 100)
	history.Append(0, 200)

	// THEN
	assert.Equal(t, []float64{100, 200}, history.Values(0))
	assert.Equal(t, 150.0, history.Avg(0))
}

func TestLedCollector_DutyIsReadFromPeripheral(t *testing.T) {
	// GIVEN
	handler, store, output := createHandler(t)
	handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandSetLedBrightness, 100, 0))
	// the peripheral was changed behind the dispatcher's back
	assert.NoError(t, output.SetDuty(0, 7))
	collector := NewLedCollector(handler, output, store.LedCount(), nil)

	// WHEN
	expected := `
# HELP lednice_led_duty Current PWM compare value of the LED
# TYPE lednice_led_duty gauge
lednice_led_duty{id="0",name="led_1"} 7
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected), "lednice_led_duty")

	// THEN
	assert.NoError(t, err)
}

func TestLedCollector_UnreadableDutyIsSkipped(t *testing.T) {
	// GIVEN
	handler, store, _ := createHandler(t)
	collector := NewLedCollector(handler, failingDutyReader{}, store.LedCount(), nil)

	// WHEN
	count := testutil.CollectAndCount(collector, "lednice_led_duty")

	// THEN
	assert.Equal(t, 0, count)
	assert.Equal(t, 2, testutil.CollectAndCount(collector))
}
