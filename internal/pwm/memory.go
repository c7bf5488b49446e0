package pwm

import "sync"

// MemoryOutput keeps the duty of every channel in memory, used when no peripheral is configured
type MemoryOutput struct {
	mu    sync.Mutex
	duty  map[int]uint8
	calls int
}

func NewMemoryOutput() *MemoryOutput {
	return &MemoryOutput{
		duty: map[int]uint8{},
	}
}

func (o *MemoryOutput) GetId() string {
	return "memory"
}

func (o *MemoryOutput) SetDuty(channel int, duty uint8) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.duty[channel] = duty
	o.calls++
	return nil
}

// GetDuty returns MaxDutyValue (off) for channels that were never set
func (o *MemoryOutput) GetDuty(channel int) (uint8, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	duty, ok := o.duty[channel]
	if !ok {
		return MaxDutyValue, nil
	}
	return duty, nil
}

// Calls returns the number of SetDuty calls
func (o *MemoryOutput) Calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}
