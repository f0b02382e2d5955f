package scene

import (
	"github.com/plus3/playpark/ecs"
)

// BehaviourContext is handed to each behaviour every frame
type BehaviourContext struct {
	World     *ecs.World
	Entity    ecs.EntityId
	DeltaTime float32
	Commands  *ecs.Commands
}

// Behaviour is a per-entity update hook, run by the BehaviourSystem before
// transforms resolve.
type Behaviour interface {
	Update(ctx *BehaviourContext)
}

// Slot wraps a bound behaviour with an enable flag, so the overlay can turn
// individual behaviours on and off without unbinding them.
type Slot struct {
	Enabled   bool
	Behaviour Behaviour
}

// Behaviours is the component binding an entity's behaviours. Behaviours
// run in binding order.
type Behaviours struct {
	Slots []*Slot
}

// Bind attaches a behaviour, enabled, and returns its slot
func (b *Behaviours) Bind(behaviour Behaviour) *Slot {
	slot := &Slot{Enabled: true, Behaviour: behaviour}
	b.Slots = append(b.Slots, slot)
	return slot
}

// BindDisabled attaches a behaviour in a disabled slot
func (b *Behaviours) BindDisabled(behaviour Behaviour) *Slot {
	slot := b.Bind(behaviour)
	slot.Enabled = false
	return slot
}

// FindBehaviour returns the first bound behaviour of type T and its slot,
// or the zero value and nil if none is bound
func FindBehaviour[T Behaviour](b *Behaviours) (T, *Slot) {
	for _, slot := range b.Slots {
		if v, ok := slot.Behaviour.(T); ok {
			return v, slot
		}
	}
	var zero T
	return zero, nil
}
