package telemetry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownSink is returned by Create for names nobody registered.
	ErrUnknownSink = errors.New("telemetry: unknown sink")
	// ErrStdoutBusy is returned by Validate when a frontend draws on stdout
	// and the sink would print there too.
	ErrStdoutBusy = errors.New("telemetry: stdout is used by the game display")
)

// Factory builds a sink from options.
type Factory func(opts Options) (Sink, error)

// SinkInfo describes a registered sink.
type SinkInfo struct {
	Name        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	sinks = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a sink factory to the registry.
// Panics if a sink with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sinks[name]; exists {
		panic(fmt.Sprintf("telemetry: sink %q already registered", name))
	}
	sinks[name] = entry{factory: f, description: description}
}

// List returns all registered sinks, sorted by name.
func List() []SinkInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SinkInfo, 0, len(sinks))
	for name, e := range sinks {
		result = append(result, SinkInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates the sink registered under name.
func Create(name string, opts Options) (Sink, error) {
	mu.RLock()
	e, ok := sinks[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSink, name)
	}
	return e.factory(opts)
}

// Exists checks if a sink with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sinks[name]
	return ok
}

// Validate checks a sink name before a game starts. Frontends that draw on
// the process stdout pass stdoutBusy so the stdout sink is refused. An empty
// name means "none".
func Validate(name string, stdoutBusy bool) error {
	if name == "" {
		return nil
	}
	if !Exists(name) {
		return fmt.Errorf("%w %q", ErrUnknownSink, name)
	}
	if stdoutBusy && name == StdoutSink {
		return fmt.Errorf("%w: use the log or csv sink instead of %q", ErrStdoutBusy, name)
	}
	return nil
}
