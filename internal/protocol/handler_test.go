package protocol

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializedHandler_NotifiesListeners(t *testing.T) {
	// GIVEN
	dispatcher, _ := createDispatcher(t)
	handler := NewSerializedHandler(dispatcher)

	var requests []Request
	var results []Result
	handler.AddListener(func(request Request, result Result) {
		requests = append(requests, request)
		results = append(results, result)
	})

	// WHEN
	set := NewVendorRequest(CommandSetLedBrightness, 12, 0)
	handler.HandleRequest(set)
	handler.HandleRequest(NewVendorRequest(CommandGetLedInfo, 0, 5))

	// THEN
	assert.Equal(t, []Request{set, NewVendorRequest(CommandGetLedInfo, 0, 5)}, requests)
	assert.Equal(t, ResultEmpty, results[0].Kind)
	assert.Equal(t, ResultIgnored, results[1].Kind)
}

func TestSerializedHandler_ConcurrentWriters(t *testing.T) {
	// GIVEN
	dispatcher, peripheral := createDispatcher(t)
	handler := NewSerializedHandler(dispatcher)
	count := 0
	handler.AddListener(func(request Request, result Result) {
		count++
	})

	// WHEN
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(value int) {
			defer wg.Done()
			handler.HandleRequest(NewVendorRequest(CommandSetLedBrightness, uint16(value), 0))
			handler.HandleRequest(NewVendorRequest(CommandGetLedBrightness, 0, 0))
		}(i)
	}
	wg.Wait()

	// THEN
	assert.Equal(t, 100, count)
	assert.Len(t, peripheral.calls, 50)
	last := handler.HandleRequest(NewVendorRequest(CommandGetLedBrightness, 0, 0))
	assert.Equal(t, []byte{255 - peripheral.lastDuty()}, last.Bytes())
}
