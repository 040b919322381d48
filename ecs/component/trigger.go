package component

type TriggerKind uint8

const (
	TriggerDeadZone TriggerKind = iota
	TriggerEndFlag
)

// Trigger is a sensor volume reacting to the player or enemies.
type Trigger struct {
	Kind    TriggerKind
	Fired   bool
	Delay   float64
	Session Reporter
}

var TriggerComponent = NewComponent[Trigger]()
