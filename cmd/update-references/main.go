package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"waterlayout/pkg/visualtest"
)

const (
	scriptDir    = "testdata/scripts"
	referenceDir = "testdata/reference"
	width        = 390
	height       = 844
)

// Regenerates the reference images checked by pkg/visualtest. Run from the
// repository root, optionally naming the scripts to update.
func main() {
	scripts, err := selectScripts(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(scripts) == 0 {
		fmt.Println("Reference Image Generator for waterlayout")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/update-references [name...]")
		fmt.Println()
		fmt.Printf("No scripts found in %s\n", scriptDir)
		os.Exit(1)
	}

	cfg := visualtest.Config(width, height)
	for _, script := range scripts {
		name := strings.TrimSuffix(filepath.Base(script), ".js")
		ref := filepath.Join(referenceDir, name+".png")
		if err := visualtest.UpdateReferenceImage(script, ref, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", ref, err)
			os.Exit(1)
		}
	}
	fmt.Printf("%d reference images generated\n", len(scripts))
}

// selectScripts returns the named scripts, or every script when none are
// named.
func selectScripts(names []string) ([]string, error) {
	if len(names) == 0 {
		return filepath.Glob(filepath.Join(scriptDir, "*.js"))
	}
	scripts := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(scriptDir, strings.TrimSuffix(name, ".js")+".js")
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("unknown script %s: %w", name, err)
		}
		scripts = append(scripts, p)
	}
	return scripts, nil
}
