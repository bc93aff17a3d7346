package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	uispec "github.com/goliatone/go-uispec"
	"github.com/goliatone/go-uispec/pkg/docs"
)

func main() {
	output := flag.String("output", "docs/reference", "directory to write the Markdown pages into")
	only := flag.String("schema", "", "render a single definition (all if empty)")
	flag.Parse()

	reg := uispec.DefaultRegistry()

	generator, err := docs.NewGenerator()
	if err != nil {
		log.Fatalf("Failed to build generator: %v", err)
	}

	pages := make(map[string]string)
	if *only != "" {
		def, ok := reg.Definition(*only)
		if !ok {
			log.Fatalf("Unknown definition %q", *only)
		}
		page, err := generator.Page(def)
		if err != nil {
			log.Fatalf("Failed to render %q: %v", *only, err)
		}
		pages[*only] = page
	} else {
		rendered, err := generator.Pages(reg)
		if err != nil {
			log.Fatalf("Failed to render pages: %v", err)
		}
		pages = rendered
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}
	for name, page := range pages {
		path := filepath.Join(*output, name+".md")
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	fmt.Printf("Wrote %d pages to %s\n", len(pages), *output)
}
