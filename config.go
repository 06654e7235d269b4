package ecscore

import (
	"io"

	"github.com/sirupsen/logrus"
)

// TableEvent identifies a structural mutation a ComponentTable can
// report to a host-configured hook.
type TableEvent int

const (
	TableEventRowAdded TableEvent = iota
	TableEventRowRemoved
	TableEventRowMoved
)

// TableEvents are optional hooks a host can register to observe
// ComponentTable structural churn.
type TableEvents struct {
	OnRowAdded   func(archetype Id, entity Id)
	OnRowRemoved func(archetype Id, entity Id)
	OnRowMoved   func(fromArchetype, toArchetype Id, entity Id)
}

// config holds process-wide, host-configurable behavior: the logging
// sink and verbosity, and table mutation hooks. Callers reach it
// through the package-level Config variable, e.g.
// ecscore.Config.SetLogger(...).
type config struct {
	logger      *logrus.Logger
	tableEvents TableEvents
}

// Config is the global configuration instance.
var Config = &config{logger: newDiscardLogger()}

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger installs a host-chosen logging sink. Until called, ecscore
// logs nowhere.
func (c *config) SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newDiscardLogger()
	}
	c.logger = l
}

// SetLevel configures logging verbosity on the currently installed
// logger.
func (c *config) SetLevel(level logrus.Level) {
	c.logger.SetLevel(level)
}

// SetTableEvents configures the table mutation hooks fired by every
// ComponentTable.
func (c *config) SetTableEvents(te TableEvents) {
	c.tableEvents = te
}

func logger() *logrus.Logger {
	return Config.logger
}
