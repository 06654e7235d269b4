package ecscore

import "fmt"

// InvalidIdError reports use of an id that is not currently in use for
// its kind.
type InvalidIdError struct {
	Kind IdKind
	Id   Id
}

func newInvalidIdError(kind IdKind, id Id) InvalidIdError {
	return InvalidIdError{Kind: kind, Id: id}
}

func (e InvalidIdError) Error() string {
	return fmt.Sprintf("invalid %s id: %d", e.Kind, e.Id)
}

// ComponentExistsError reports AddComponent on an entity that already
// has the given component type.
type ComponentExistsError struct {
	Entity        Entity
	ComponentType ComponentType
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component type %d already present on entity %d", e.ComponentType.id, e.Entity.id)
}

// ComponentNotFoundError reports RemoveComponent/GetComponent for a
// component type the entity does not have.
type ComponentNotFoundError struct {
	Entity        Entity
	ComponentType ComponentType
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component type %d not present on entity %d", e.ComponentType.id, e.Entity.id)
}

// EmptyRequirementsError reports CreateSystem called with an empty
// requirement TypeSet.
type EmptyRequirementsError struct{}

func (e EmptyRequirementsError) Error() string {
	return "system requirements must be non-empty"
}

// TableIteratingError reports a structural operation that is forbidden
// while a table is mid-iteration (e.g. CreateSystem).
type TableIteratingError struct {
	Archetype Id
}

func (e TableIteratingError) Error() string {
	return fmt.Sprintf("archetype %d's table is currently being iterated", e.Archetype)
}

// DoubleInitError reports a second call to Init.
type DoubleInitError struct{}

func (e DoubleInitError) Error() string {
	return "ecscore: already initialized"
}

// NotInitializedError reports use of the package before Init.
type NotInitializedError struct{}

func (e NotInitializedError) Error() string {
	return "ecscore: Init has not been called"
}

// ComponentNotRequiredError reports access to a component type not
// present in a system's requirements via a ComponentGroup.
type ComponentNotRequiredError struct {
	System        System
	ComponentType ComponentType
}

func (e ComponentNotRequiredError) Error() string {
	return fmt.Sprintf("component type %d is not in system %d's requirements", e.ComponentType.id, e.System.id)
}
