package feeder

import "time"

// EventListener is notified of every response the feeder gateway sends back,
// including the ones that are retried.
type EventListener interface {
	OnResponse(urlPath string, status int, took time.Duration)
}

type SelectiveListener struct {
	OnResponseCb func(urlPath string, status int, took time.Duration)
}

func (l *SelectiveListener) OnResponse(urlPath string, status int, took time.Duration) {
	if l.OnResponseCb != nil {
		l.OnResponseCb(urlPath, status, took)
	}
}
