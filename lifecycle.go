package ecscore

// worldState bundles the four id-kind registries that together hold
// every live entity, component type, system and archetype.
type worldState struct {
	initialized bool

	entities       *entityRegistry
	componentTypes *componentTypeRegistry
	systems        *systemRegistry
	archetypes     *archetypeRegistry
}

var world = &worldState{}

// Init prepares the package for use. It must be called exactly once,
// before any Create*/Destroy*/Add*/Remove* call; a second call panics
// with DoubleInitError.
func Init() {
	failIf(world.initialized, DoubleInitError{})

	logger().Info("initializing")

	world.entities = newEntityRegistry()
	world.componentTypes = newComponentTypeRegistry()
	world.systems = newSystemRegistry()
	world.archetypes = newArchetypeRegistry()
	world.initialized = true

	logger().Info("initialized")
}

func requireInitialized() {
	failIf(!world.initialized, NotInitializedError{})
}
