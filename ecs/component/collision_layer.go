package component

// CollisionLayer decides which other layers a collider touches. Entities
// playing a death animation are moved to LayerDeath, which touches nothing.
type CollisionLayer uint8

const (
	LayerDefault CollisionLayer = iota
	LayerDeath
)

func (l CollisionLayer) String() string {
	if l == LayerDeath {
		return "Death"
	}
	return "Default"
}
