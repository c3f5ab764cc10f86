package descriptor

import "sync"

// Param is a single named parameter with its default value. Parameter order is
// significant: it fixes the parameter's slot in the uniform layout.
type Param struct {
	// Name is the parameter identifier used for lookups and overrides.
	Name string

	// Value is the parameter's default value.
	Value float32
}

// Params is the live, mutable parameter set shared between the frame loop and
// any external parameter-editing collaborator. The frame loop reads it every
// tick, so a mutation is visible on the very next frame with no explicit
// notification step. Last write wins.
type Params struct {
	mu sync.Mutex

	// names holds the declared parameter order from the descriptor.
	names []string

	values map[string]float32
}

// NewParams builds the live parameter set from a descriptor's ordered defaults
// merged with caller overrides. Override names that are not declared by the
// descriptor are ignored, since the uniform layout is fixed by the declared
// parameter list.
//
// Parameters:
//   - defaults: the descriptor's ordered default parameters
//   - overrides: caller values replacing defaults by name (nil safe)
//
// Returns:
//   - *Params: the merged live parameter set
func NewParams(defaults []Param, overrides map[string]float32) *Params {
	p := &Params{
		names:  make([]string, 0, len(defaults)),
		values: make(map[string]float32, len(defaults)),
	}
	for _, d := range defaults {
		p.names = append(p.names, d.Name)
		p.values[d.Name] = d.Value
	}
	for name, v := range overrides {
		if _, known := p.values[name]; known {
			p.values[name] = v
		}
	}
	return p
}

// Get returns the current value of the named parameter, or 0 if the name is
// not declared.
//
// Parameters:
//   - name: the parameter identifier
//
// Returns:
//   - float32: the current value, or 0 for unknown names
func (p *Params) Get(name string) float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[name]
}

// Set updates the named parameter. Unknown names are ignored.
//
// Parameters:
//   - name: the parameter identifier
//   - v: the new value
func (p *Params) Set(name string, v float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, known := p.values[name]; known {
		p.values[name] = v
	}
}

// Names returns the declared parameter names in uniform-layout order.
//
// Returns:
//   - []string: a copy of the ordered name list
func (p *Params) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of declared parameters.
//
// Returns:
//   - int: the declared parameter count
func (p *Params) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.names)
}

// AppendValues appends the current parameter values in declared order to dst.
// This is the frame loop's read path; it performs a single lock acquisition
// and no allocation when dst has sufficient capacity.
//
// Parameters:
//   - dst: the destination slice to append to
//
// Returns:
//   - []float32: dst with the parameter values appended
func (p *Params) AppendValues(dst []float32) []float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, name := range p.names {
		dst = append(dst, p.values[name])
	}
	return dst
}

// Snapshot returns a copy of the current name-to-value mapping.
//
// Returns:
//   - map[string]float32: a copy of the current values
func (p *Params) Snapshot() map[string]float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]float32, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}
