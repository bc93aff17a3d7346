package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	uispec "github.com/goliatone/go-uispec"
	"github.com/goliatone/go-uispec/pkg/presets"
	"github.com/goliatone/go-uispec/pkg/schema"
	"github.com/goliatone/go-uispec/pkg/validate"
)

func main() {
	schemaName := flag.String("schema", "", "definition name to validate against (interactive picker if empty)")
	input := flag.String("input", "", "JSON payload path (stdin if empty)")
	presetsDir := flag.String("presets", "", "directory of preset override documents")
	list := flag.Bool("list", false, "list registered definition names")
	flag.Parse()

	reg := uispec.DefaultRegistry()
	if *presetsDir != "" {
		store, err := presets.LoadFS(os.DirFS(*presetsDir))
		if err != nil {
			log.Fatalf("Failed to load presets: %v", err)
		}
		derived, err := store.Apply(reg)
		if err != nil {
			log.Fatalf("Failed to apply presets: %v", err)
		}
		reg = derived
	}

	if *list {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}

	name := *schemaName
	if name == "" {
		picked, err := pickDefinition(reg)
		if err != nil {
			log.Fatalf("Failed to pick definition: %v", err)
		}
		name = picked
	}

	payload, err := readPayload(*input)
	if err != nil {
		log.Fatalf("Failed to read payload: %v", err)
	}

	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		log.Fatalf("Failed to parse payload: %v", err)
	}

	result, err := validate.Validate(reg, name, raw)
	if err != nil {
		log.Fatalf("Failed to validate: %v", err)
	}

	if !result.Valid {
		for _, issue := range result.Issues {
			path := issue.Path
			if path == "" {
				path = "(root)"
			}
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", path, issue.Kind, issue.Message)
		}
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result.Value, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

func pickDefinition(reg *schema.Registry) (string, error) {
	var choice string
	prompt := &survey.Select{
		Message:  "Definition:",
		Options:  reg.Names(),
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

func readPayload(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
