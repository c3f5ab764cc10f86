// Package shader performs lightweight static checks on effect WGSL source.
// The GPU driver is the authority on WGSL validity; these checks exist to
// turn the common authoring mistakes (wrong entry point names, missing or
// misplaced uniform binding) into readable errors before a pipeline build is
// attempted.
package shader

import (
	"fmt"
	"regexp"
)

const (
	// VertexEntryPoint is the required vertex stage entry point name.
	VertexEntryPoint = "vs_main"

	// FragmentEntryPoint is the required fragment stage entry point name.
	FragmentEntryPoint = "fs_main"
)

var (
	vertexEntryRe   = regexp.MustCompile(`@vertex\s+fn\s+(\w+)`)
	fragmentEntryRe = regexp.MustCompile(`@fragment\s+fn\s+(\w+)`)
	uniformVarRe    = regexp.MustCompile(`@group\((\d+)\)\s*@binding\((\d+)\)\s*var\s*<\s*uniform\s*>`)
)

// EntryPoints scans WGSL source for stage entry point declarations.
//
// Parameters:
//   - source: the WGSL source to scan
//
// Returns:
//   - []string: declared vertex entry point names
//   - []string: declared fragment entry point names
func EntryPoints(source string) (vertex, fragment []string) {
	for _, m := range vertexEntryRe.FindAllStringSubmatch(source, -1) {
		vertex = append(vertex, m[1])
	}
	for _, m := range fragmentEntryRe.FindAllStringSubmatch(source, -1) {
		fragment = append(fragment, m[1])
	}
	return vertex, fragment
}

// ValidateEffectSource checks that WGSL source satisfies the effect pipeline
// contract: a vs_main vertex entry point, an fs_main fragment entry point,
// and a single uniform variable bound at group 0 binding 0.
//
// Parameters:
//   - source: the WGSL source to check
//
// Returns:
//   - error: a descriptive error for the first violated rule, otherwise nil
func ValidateEffectSource(source string) error {
	vertex, fragment := EntryPoints(source)

	if !contains(vertex, VertexEntryPoint) {
		return fmt.Errorf("shader must declare a @vertex entry point named %q, found %v", VertexEntryPoint, vertex)
	}
	if !contains(fragment, FragmentEntryPoint) {
		return fmt.Errorf("shader must declare a @fragment entry point named %q, found %v", FragmentEntryPoint, fragment)
	}

	uniforms := uniformVarRe.FindAllStringSubmatch(source, -1)
	if len(uniforms) == 0 {
		return fmt.Errorf("shader must declare a uniform variable at @group(0) @binding(0)")
	}
	if len(uniforms) > 1 {
		return fmt.Errorf("shader declares %d uniform variables, the effect pipeline binds exactly one", len(uniforms))
	}
	if group, binding := uniforms[0][1], uniforms[0][2]; group != "0" || binding != "0" {
		return fmt.Errorf("uniform variable must be bound at @group(0) @binding(0), found @group(%s) @binding(%s)", group, binding)
	}

	return nil
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
