package navigation

import "context"

// ScrollPositionChanged is delivered whenever the page scrolls.
type ScrollPositionChanged struct {
	Offset float64
}

// Watch feeds scroll events through t and emits the active section each time it
// changes. Offsets that match no section leave the previous section in place.
// The returned channel is closed when ctx is done or events is closed.
func (t *Tracker) Watch(ctx context.Context, events <-chan ScrollPositionChanged) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		var current string
		for {
			var ev ScrollPositionChanged
			select {
			case <-ctx.Done():
				return
			case e, ok := <-events:
				if !ok {
					return
				}
				ev = e
			}
			// Drain anything queued behind ev; only the latest offset matters.
		drain:
			for {
				select {
				case e, ok := <-events:
					if !ok {
						break drain
					}
					ev = e
				default:
					break drain
				}
			}

			id, ok := t.Active(ev.Offset)
			if !ok || id == current {
				continue
			}
			current = id
			select {
			case out <- id:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
