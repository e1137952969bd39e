package eventbus

import (
	"testing"
	"time"
)

type planEvt struct{ id string }
type fillEvt struct{ level float64 }

func TestFilteredDeliversOnlyMatchingType(t *testing.T) {
	bus := New()
	defer bus.Close()

	plans, cancel := Filtered[planEvt](bus)
	defer cancel()

	bus.Publish(fillEvt{level: 80})
	bus.Publish(planEvt{id: "p1"})
	bus.Publish(fillEvt{level: 90})
	bus.Publish(planEvt{id: "p2"})

	for _, want := range []string{"p1", "p2"} {
		select {
		case got := <-plans:
			if got.id != want {
				t.Fatalf("expected %s got %s", want, got.id)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestFilteredCancelClosesChannel(t *testing.T) {
	bus := New()
	defer bus.Close()

	plans, cancel := Filtered[planEvt](bus)
	cancel()

	select {
	case _, ok := <-plans:
		if ok {
			t.Fatalf("expected closed channel after cancel")
		}
	case <-time.After(time.Second):
		t.Fatalf("channel not closed after cancel")
	}
}
