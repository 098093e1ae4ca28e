package model

// ObservableString holds a string value and notifies subscribers when it
// changes. Notifications run synchronously on the calling goroutine; the
// model is single-threaded by contract, so there is no locking.
type ObservableString struct {
	value     string
	listeners []func(old, new string)
}

// NewObservableString creates an observable seeded with the given value.
// No notification fires for the initial value.
func NewObservableString(value string) *ObservableString {
	return &ObservableString{value: value}
}

// Get returns the current value.
func (o *ObservableString) Get() string {
	return o.value
}

// Set updates the value and notifies subscribers. Setting the same value
// again is a no-op and fires no notifications.
func (o *ObservableString) Set(value string) {
	if value == o.value {
		return
	}
	old := o.value
	o.value = value
	for _, fn := range o.listeners {
		fn(old, value)
	}
}

// Subscribe registers a change listener. Listeners cannot be removed;
// subscribers live as long as the preference session.
func (o *ObservableString) Subscribe(fn func(old, new string)) {
	o.listeners = append(o.listeners, fn)
}
