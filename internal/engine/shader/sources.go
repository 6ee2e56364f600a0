package shader

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// Program names shipped with the binary.
const (
	// Main is the textured Blinn-Phong program used for scene objects.
	Main = "main"
	// Flat draws unlit geometry in a single colour (light markers, debug lines).
	Flat = "flat"
)

//go:embed glsl/*.glsl
var embedded embed.FS

// Names lists the embedded programs.
func Names() []string {
	return []string{Main, Flat}
}

// Sources returns the vertex and fragment sources of a program. The files
// are <name>.vert.glsl and <name>.frag.glsl, read from dir when it is set.
func Sources(name, dir string) (vertex, fragment string, err error) {
	read := func(file string) ([]byte, error) {
		if dir != "" {
			return os.ReadFile(filepath.Join(dir, file))
		}
		return embedded.ReadFile("glsl/" + file)
	}

	vert, err := read(name + ".vert.glsl")
	if err != nil {
		return "", "", fmt.Errorf("vertex source for %s: %w", name, err)
	}
	frag, err := read(name + ".frag.glsl")
	if err != nil {
		return "", "", fmt.Errorf("fragment source for %s: %w", name, err)
	}
	return string(vert), string(frag), nil
}
