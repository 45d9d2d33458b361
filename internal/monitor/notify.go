package monitor

// ChannelNotifier returns a Notify that hands batches to ch, replacing a
// batch the consumer has not picked up yet. Each batch is a complete
// snapshot, so only the newest one matters. ch should be buffered; an
// unbuffered channel makes delivery block until the consumer receives.
func ChannelNotifier(ch chan Batch) Notify {
	return func(b Batch) {
		if cap(ch) == 0 {
			ch <- b
			return
		}
		for {
			select {
			case ch <- b:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	}
}
