package behavioral

// Observer receives notifications from a subject it subscribed to.
type Observer interface {
	Notify(event string)
}

// NewsFeed is the subject: observers subscribe and receive every published
// event exactly once, in subscription order.
type NewsFeed struct {
	observers []Observer
}

// Subscribe registers an observer.
func (f *NewsFeed) Subscribe(o Observer) {
	f.observers = append(f.observers, o)
}

// Unsubscribe removes an observer; later publishes no longer reach it.
func (f *NewsFeed) Unsubscribe(o Observer) {
	for i, existing := range f.observers {
		if existing == o {
			f.observers = append(f.observers[:i], f.observers[i+1:]...)
			return
		}
	}
}

// Publish notifies every current subscriber.
func (f *NewsFeed) Publish(event string) {
	for _, o := range f.observers {
		o.Notify(event)
	}
}

// Recorder is a toy observer that remembers what it saw.
type Recorder struct {
	Seen []string
}

func (r *Recorder) Notify(event string) {
	r.Seen = append(r.Seen, event)
}
