package nn

import (
	"time"

	"github.com/sirupsen/logrus"
)

// LayerEvent describes one finished layer of a Build call.
type LayerEvent struct {
	Complexity int           `json:"complexity"`
	Pairs      int           `json:"pairs"`
	Units      int           `json:"units"`
	MinError   int           `json:"min_error"` // -1 for an empty layer
	ZeroError  int           `json:"zero_error"`
	StoreSize  int           `json:"store_size"`
	Elapsed    time.Duration `json:"elapsed"`
	EarlyStop  bool          `json:"early_stop"`
}

// Observer receives layer events. Build calls observers synchronously.
type Observer interface {
	OnLayer(event LayerEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event LayerEvent)

func (f ObserverFunc) OnLayer(event LayerEvent) {
	f(event)
}

// LogObserver writes layer events to a logrus logger at Info level.
type LogObserver struct {
	Log logrus.FieldLogger
}

func (o *LogObserver) OnLayer(event LayerEvent) {
	l := o.Log
	if l == nil {
		l = logrus.StandardLogger()
	}
	entry := l.WithFields(logrus.Fields{
		"complexity": event.Complexity,
		"pairs":      event.Pairs,
		"units":      event.Units,
		"min_error":  event.MinError,
		"zero_error": event.ZeroError,
		"elapsed":    event.Elapsed,
	})
	if event.EarlyStop {
		entry.Info("layer reached zero error, stopping")
		return
	}
	entry.Info("layer built")
}

// ChannelObserver forwards events to a buffered channel.
type ChannelObserver struct {
	Events chan LayerEvent
}

func NewChannelObserver(bufferSize int) *ChannelObserver {
	return &ChannelObserver{
		Events: make(chan LayerEvent, bufferSize),
	}
}

func (o *ChannelObserver) OnLayer(event LayerEvent) {
	select {
	case o.Events <- event:
	default:
		// Channel full, drop event to avoid blocking the build
	}
}
