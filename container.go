package keyframe

import "sort"

// PropertyStore is a named-property container owned by a scene entity.
// Timelines read and write it by property name and never take ownership.
type PropertyStore interface {
	HasProperty(name string) bool
	Get(name string) (any, bool)
	Set(name string, value any)
}

// Container is a map-backed PropertyStore. The zero value is ready to use.
// Methods on a nil *Container behave as an empty store and Set is ignored.
type Container struct {
	props map[string]any
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{props: make(map[string]any)}
}

// HasProperty reports whether name is set.
func (c *Container) HasProperty(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.props[name]
	return ok
}

// Get returns the value stored under name.
func (c *Container) Get(name string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.props[name]
	return v, ok
}

// Set stores value under name, replacing any previous value.
func (c *Container) Set(name string, value any) {
	if c == nil {
		return
	}
	if c.props == nil {
		c.props = make(map[string]any)
	}
	c.props[name] = value
}

// Remove deletes name from the container.
func (c *Container) Remove(name string) {
	if c == nil {
		return
	}
	delete(c.props, name)
}

// Names returns the property names in sorted order.
func (c *Container) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.props))
	for name := range c.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup is the typed read: it returns the value under name when it exists and
// holds a T.
func Lookup[T any](s PropertyStore, name string) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	v, ok := s.Get(name)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	return tv, ok
}
