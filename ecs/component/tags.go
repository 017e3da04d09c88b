package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type LevelTag struct{}

var LevelTagComponent = NewComponent[LevelTag]()

// Disabled entities are skipped by gameplay systems.
type Disabled struct{}

var DisabledComponent = NewComponent[Disabled]()

// Name is the prefab name an entity was built from.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
