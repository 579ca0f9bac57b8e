package input

// ReceiverFunc adapts a plain function to EventReceiver.
type ReceiverFunc func(ev KeyEvent) bool

func (f ReceiverFunc) OnEvent(ev KeyEvent) bool {
	return f(ev)
}

// Dispatcher offers each event to its receivers in registration order and
// stops at the first one that consumes it.
type Dispatcher struct {
	receivers []EventReceiver
}

func NewDispatcher(receivers ...EventReceiver) *Dispatcher {
	d := &Dispatcher{}
	for _, r := range receivers {
		d.Add(r)
	}
	return d
}

// Add appends r to the end of the chain. Nil receivers are ignored.
func (d *Dispatcher) Add(r EventReceiver) {
	if r == nil {
		return
	}
	d.receivers = append(d.receivers, r)
}

// OnEvent lets a Dispatcher be nested inside another chain.
func (d *Dispatcher) OnEvent(ev KeyEvent) bool {
	for _, r := range d.receivers {
		if r.OnEvent(ev) {
			return true
		}
	}
	return false
}

func (d *Dispatcher) Len() int {
	return len(d.receivers)
}
