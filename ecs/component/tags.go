package component

// Category is the collision category an entity (or one of its colliders)
// belongs to. It replaces string tags; String returns the tag name the
// physics host reports.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryEnemy
	CategoryGround
	CategoryWeakPoint
	CategoryPowerUp
	CategoryCamera
	CategoryDeadZone
	CategoryEndFlag
)

var categoryNames = [...]string{
	CategoryNone:      "",
	CategoryPlayer:    "Player",
	CategoryEnemy:     "Enemy",
	CategoryGround:    "Ground",
	CategoryWeakPoint: "WeakPoint",
	CategoryPowerUp:   "PowerUp",
	CategoryCamera:    "MainCamera",
	CategoryDeadZone:  "DeadZone",
	CategoryEndFlag:   "EndFlag",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// ParseCategory maps a tag name back to its category.
func ParseCategory(tag string) (Category, bool) {
	for i, name := range categoryNames {
		if i > 0 && name == tag {
			return Category(i), true
		}
	}
	return CategoryNone, false
}

// CategoryMask is a set of categories.
type CategoryMask uint32

// MaskOf builds a mask from the given categories.
func MaskOf(cats ...Category) CategoryMask {
	var m CategoryMask
	for _, c := range cats {
		m |= 1 << c
	}
	return m
}

func (m CategoryMask) Has(c Category) bool {
	return m&(1<<c) != 0
}

// Tag carries the primary collision category of an entity.
type Tag struct {
	Category Category
}

var TagComponent = NewComponent[Tag]()
