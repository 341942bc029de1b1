package event

// Subscription represents a stream of events. The carrier of the events is
// typically a channel, but isn't part of the interface itself.
//
// Subscriptions can fail while in progress, which is reported through Err.
// Unsubscribe stops delivery and closes the error channel.
type Subscription interface {
	Err() <-chan error
	Unsubscribe()
}
