package ecs

// EntityId encodes both the generation counter (upper 32 bits) and the slot
// index (lower 32 bits). A despawned slot bumps its generation, so handles
// held across a despawn become detectably stale.
type EntityId uint64

// Nil is the zero EntityId. Spawn never returns it, so components can use
// it to mean "no entity", e.g. a transform without a parent.
const Nil EntityId = 0

// NewEntityId creates an EntityId from a generation and slot index
func NewEntityId(generation uint32, index uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the generation counter from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
