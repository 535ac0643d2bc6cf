// Package telemetry exports gameplay counters through OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go-zombie-survival/internal/event"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "go-zombie-survival"

// Metrics counts game events. It is a dispatcher listener.
type Metrics struct {
	killed    metric.Int64Counter
	fired     metric.Int64Counter
	damage    metric.Int64Counter
	collected metric.Int64Counter
}

// New creates the counters on m, or on the global meter (no-op unless a
// provider is installed) when m is nil.
func New(m metric.Meter) (*Metrics, error) {
	if m == nil {
		m = otel.Meter(meterName)
	}
	var (
		mt  Metrics
		err error
	)
	if mt.killed, err = m.Int64Counter("game.enemies.killed",
		metric.WithDescription("Zombies killed")); err != nil {
		return nil, fmt.Errorf("creating killed counter: %w", err)
	}
	if mt.fired, err = m.Int64Counter("game.shots.fired",
		metric.WithDescription("Bullets fired")); err != nil {
		return nil, fmt.Errorf("creating fired counter: %w", err)
	}
	if mt.damage, err = m.Int64Counter("game.player.damage",
		metric.WithDescription("Health the player lost"),
		metric.WithUnit("{hp}")); err != nil {
		return nil, fmt.Errorf("creating damage counter: %w", err)
	}
	if mt.collected, err = m.Int64Counter("game.pickups.collected",
		metric.WithDescription("Pickups collected")); err != nil {
		return nil, fmt.Errorf("creating pickups counter: %w", err)
	}
	return &mt, nil
}

// Subscribe registers the metrics on d.
func (m *Metrics) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(m, event.EnemyKilled, event.WeaponFired, event.PlayerDamaged, event.PickupCollected)
}

func (m *Metrics) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.EnemyKilled:
		m.killed.Add(ctx, 1)
	case event.WeaponFired:
		if data, ok := e.Data.(event.WeaponFiredData); ok {
			m.fired.Add(ctx, 1, metric.WithAttributes(attribute.String("weapon", data.Weapon.String())))
		}
	case event.PlayerDamaged:
		if data, ok := e.Data.(event.PlayerDamagedData); ok && data.Amount > 0 {
			m.damage.Add(ctx, int64(data.Amount))
		}
	case event.PickupCollected:
		if data, ok := e.Data.(event.PickupData); ok {
			m.collected.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", data.Kind.String())))
		}
	}
}
