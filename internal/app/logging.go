// internal/app/logging.go
package app

import (
	"coffee-defense/internal/event"

	log "github.com/sirupsen/logrus"
)

// logListener is the structured log sink required of the core: one record
// per notable simulation event, with entity ids attached. Destination and
// formatting stay whatever the embedding process configured on logrus.
type logListener struct{}

func attachLogListener(d *event.Dispatcher) {
	l := &logListener{}
	for _, t := range []event.EventType{
		event.EnemySpawned,
		event.EnemyReachedEnd,
		event.EnemyKilled,
		event.TowerPlaced,
		event.TowerFired,
		event.BaseDestroyed,
		event.DifficultyAdvanced,
	} {
		d.Subscribe(t, l)
	}
}

func (l *logListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyPayload:
		log.WithFields(log.Fields{
			"event": string(e.Type),
			"id":    data.ID,
			"def":   data.DefID,
		}).Debug("enemy event")
	case event.FirePayload:
		log.WithFields(log.Fields{
			"event":  string(e.Type),
			"tower":  data.TowerID,
			"target": data.TargetID,
			"damage": data.Damage,
		}).Debug("tower fired")
	case event.TowerPayload:
		log.WithFields(log.Fields{
			"event": string(e.Type),
			"id":    data.ID,
			"def":   data.DefID,
			"x":     data.X,
			"y":     data.Y,
		}).Info("tower placed")
	case event.ProgressionPayload:
		log.WithFields(log.Fields{
			"event":          string(e.Type),
			"stage":          data.Stage,
			"spawn_interval": data.SpawnInterval,
			"speed_factor":   data.SpeedFactor,
		}).Info("difficulty advanced")
	default:
		log.WithField("event", string(e.Type)).Info("game event")
	}
}
