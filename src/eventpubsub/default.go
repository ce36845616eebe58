package eventpubsub

import (
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

var bus EventBus.Bus

func Init() {
	bus = EventBus.New()
}

// Publish is a no-op until Init is called, so library callers that never wire
// up subscribers pay nothing.
func Publish(topic string, event interface{}) {
	if bus == nil {
		return
	}

	bus.Publish(topic, event)
}

func Subscribe(topic string, callbackFn interface{}) error {
	if err := bus.SubscribeAsync(topic, callbackFn, false); err != nil {
		return err
	}

	log.Infof("Subscribed to topic %s", topic)
	return nil
}

func Unsubscribe(topic string, callbackFn interface{}) error {
	return bus.Unsubscribe(topic, callbackFn)
}

// WaitAsync blocks until every async subscriber has drained. Call it before
// rendering final output so progress lines land ahead of the report.
func WaitAsync() {
	if bus == nil {
		return
	}

	bus.WaitAsync()
}
