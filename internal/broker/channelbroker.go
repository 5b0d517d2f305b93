package broker

type publication[TID comparable, TPayload any] struct {
	ID      TID
	Channel chan TPayload
}

type subscription[TID comparable, TPayload any] struct {
	ID      TID
	Channel chan chan TPayload
}

// ChannelBroker hands the channel published under an ID to any consumer that
// asks for it. A closed subscription channel signals that nothing is
// published under the ID.
//
// We use it to route speech announcements to an open SSE stream. The stream
// handler is the producer: it publishes its channel keyed by session token
// when the browser connects and unpublishes on disconnect. Each announcement
// subscribes with the same token to borrow the channel for a single send; a
// closed subscription means nobody is listening and the announcement can be
// dropped. Publishing again under the same token replaces the previous
// channel, which covers a browser reconnecting before the old stream notices.
type ChannelBroker[TID comparable, TPayload any] struct {
	stopChannel      chan struct{}
	publishChannel   chan publication[TID, TPayload]
	unpublishChannel chan publication[TID, TPayload]
	subscribeChannel chan subscription[TID, TPayload]
}

// NewChannelBroker creates a ChannelBroker. Call Start in a goroutine to make
// it operational and Stop to shut it down.
func NewChannelBroker[TID comparable, TPayload any]() *ChannelBroker[TID, TPayload] {
	broker := ChannelBroker[TID, TPayload]{
		stopChannel:      make(chan struct{}),
		publishChannel:   make(chan publication[TID, TPayload]),
		unpublishChannel: make(chan publication[TID, TPayload]),
		subscribeChannel: make(chan subscription[TID, TPayload]),
	}
	return &broker
}

// Start listening for publish, unpublish, and subscribe events. Blocks until
// Stop is called, so it should run in a goroutine. It does not handle panics.
func (b *ChannelBroker[TID, TPayload]) Start() {
	publishedChannels := map[TID]chan TPayload{}
	for {
		select {
		case <-b.stopChannel:
			return

		case sub := <-b.subscribeChannel:
			c := publishedChannels[sub.ID]
			if c == nil {
				// Signal to the subscriber that no producer is listening.
				close(sub.Channel)
				break
			}
			sub.Channel <- c

		case pub := <-b.publishChannel:
			publishedChannels[pub.ID] = pub.Channel

		case pub := <-b.unpublishChannel:
			// A producer may only remove its own channel. After a
			// reconnect has replaced the publication, the old producer's
			// deferred unpublish must not tear down the new stream.
			if publishedChannels[pub.ID] == pub.Channel {
				delete(publishedChannels, pub.ID)
			}
		}
	}
}

// Stop the goroutine that handles the broker.
func (b *ChannelBroker[TID, TPayload]) Stop() {
	close(b.stopChannel)
}

// Subscribe to the channel with ID. The returned channel yields the
// producer's channel, or is closed immediately when nothing is published
// under the ID.
func (b *ChannelBroker[TID, TPayload]) Subscribe(id TID) chan chan TPayload {
	channel := make(chan chan TPayload, 1)
	b.subscribeChannel <- subscription[TID, TPayload]{
		ID:      id,
		Channel: channel,
	}
	return channel
}

// Publish the channel with ID, replacing any previous channel under the same
// ID.
func (b *ChannelBroker[TID, TPayload]) Publish(id TID, channel chan TPayload) {
	b.publishChannel <- publication[TID, TPayload]{
		ID:      id,
		Channel: channel,
	}
}

// Unpublish removes channel from the broker if it is still the one published
// under ID. A stale producer that has been replaced by a newer Publish under
// the same ID leaves the newer channel in place.
func (b *ChannelBroker[TID, TPayload]) Unpublish(id TID, channel chan TPayload) {
	b.unpublishChannel <- publication[TID, TPayload]{
		ID:      id,
		Channel: channel,
	}
}
