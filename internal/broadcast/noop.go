package broadcast

// Nop is a broadcaster that discards every event. The local same-device
// variant and unit tests use it; there is nobody on the other end of the
// wire to inform.
type Nop struct{}

// NewNop returns the discarding broadcaster.
func NewNop() Nop { return Nop{} }

// Publish drops the event.
func (Nop) Publish(channel, event string, payload any) {}
