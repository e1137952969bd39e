package eventbus

// Filtered subscribes to the bus and forwards only events of type T on the
// returned channel. Events of other types are discarded. The cancel function
// releases the underlying subscription, after which the typed channel is
// closed.
func Filtered[T any](bus EventBus) (<-chan T, func()) {
	src := bus.Subscribe()
	out := make(chan T, 8)
	go func() {
		defer close(out)
		for ev := range src {
			v, ok := ev.(T)
			if !ok {
				continue
			}
			select {
			case out <- v:
			default:
			}
		}
	}()
	return out, func() { bus.Unsubscribe(src) }
}
