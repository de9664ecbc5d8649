/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// Level is the severity of a log entry.
type Level int

// Log levels.
const (
	DEBUG   = Level(zapcore.DebugLevel)
	INFO    = Level(zapcore.InfoLevel)
	WARNING = Level(zapcore.WarnLevel)
	ERROR   = Level(zapcore.ErrorLevel)
	PANIC   = Level(zapcore.PanicLevel)
	FATAL   = Level(zapcore.FatalLevel)
)

const (
	defaultModule = ""
	defaultLevel  = INFO
	specSeparator = ":"
	pairSeparator = "="
)

// ErrInvalidLevel is returned when a level name cannot be parsed.
var ErrInvalidLevel = errors.New("logger: invalid log level")

var levels = newModuleLevels() //nolint:gochecknoglobals

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARN"
	case ERROR:
		return "ERROR"
	case PANIC:
		return "PANIC"
	case FATAL:
		return "FATAL"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARNING, nil
	case "error":
		return ERROR, nil
	case "panic":
		return PANIC, nil
	case "fatal":
		return FATAL, nil
	default:
		return ERROR, ErrInvalidLevel
	}
}

// SetLevel sets the level of one module.
func SetLevel(module string, level Level) {
	levels.set(module, level)
}

// SetDefaultLevel sets the level used by modules without their own setting.
func SetDefaultLevel(level Level) {
	levels.set(defaultModule, level)
}

// GetLevel returns the effective level of a module.
func GetLevel(module string) Level {
	return levels.get(module)
}

// SetSpec applies a level spec of the form
//
//	module1=level1:module2=level2:defaultLevel
//
// The spec is validated as a whole before any level is changed. When no default
// is given the default level is reset to INFO.
func SetSpec(spec string) error {
	def := Level(-1)
	hasDefault := false
	perModule := make(map[string]Level)

	for _, part := range strings.Split(spec, specSeparator) {
		module, levelName, isPair := strings.Cut(part, pairSeparator)
		if !isPair {
			if hasDefault {
				return errors.New("multiple default values found")
			}

			level, err := ParseLevel(part)
			if err != nil {
				return err
			}

			def, hasDefault = level, true

			continue
		}

		level, err := ParseLevel(levelName)
		if err != nil {
			return err
		}

		perModule[module] = level
	}

	if !hasDefault {
		def = defaultLevel
	}

	levels.set(defaultModule, def)

	for module, level := range perModule {
		levels.set(module, level)
	}

	return nil
}

// GetSpec renders the current levels in the SetSpec format, modules sorted by name.
func GetSpec() string {
	all := levels.all()

	modules := make([]string, 0, len(all))

	for module := range all {
		if module != defaultModule {
			modules = append(modules, module)
		}
	}

	sort.Strings(modules)

	var sb strings.Builder

	for _, module := range modules {
		sb.WriteString(module + pairSeparator + all[module].String() + specSeparator)
	}

	sb.WriteString(levels.get(defaultModule).String())

	return sb.String()
}

type moduleLevels struct {
	mu     sync.RWMutex
	levels map[string]Level
}

func newModuleLevels() *moduleLevels {
	return &moduleLevels{levels: make(map[string]Level)}
}

func (m *moduleLevels) get(module string) Level {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if level, ok := m.levels[module]; ok {
		return level
	}

	if level, ok := m.levels[defaultModule]; ok {
		return level
	}

	return defaultLevel
}

func (m *moduleLevels) set(module string, level Level) {
	m.mu.Lock()
	m.levels[module] = level
	m.mu.Unlock()
}

func (m *moduleLevels) all() map[string]Level {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]Level, len(m.levels))
	for module, level := range m.levels {
		out[module] = level
	}

	return out
}

func (m *moduleLevels) enabled(module string, level Level) bool {
	return level >= m.get(module)
}
