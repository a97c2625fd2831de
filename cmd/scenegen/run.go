package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spatialeval/scenegen/pkg/defs"
	"github.com/spatialeval/scenegen/pkg/generate"
	"github.com/spatialeval/scenegen/pkg/materials"
	"github.com/spatialeval/scenegen/pkg/spec"
	"github.com/spatialeval/scenegen/pkg/validation"
)

// loadAndValidate loads the spec and runs schema validation.
func loadAndValidate(projectPath string) (*spec.GenerationSpec, *validation.Report, error) {
	genSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	schemaReport := validation.ValidateSchema(genSpec)
	return genSpec, schemaReport, nil
}

func runValidate(projectPath string) error {
	_, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath string) error {
	genSpec, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("spec has validation errors")
	}

	sc, spatialReport, err := generate.Scene(genSpec)
	if err != nil {
		return err
	}

	// The scene goes to stdout for the engine; findings go to stderr so
	// piping stays clean.
	if len(spatialReport.Errors) > 0 || len(spatialReport.Warnings) > 0 {
		printValidationReportTo(os.Stderr, spatialReport)
	}
	if !spatialReport.Valid {
		return fmt.Errorf("generated scene failed spatial validation")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sc)
}

func runMaterials() error {
	for _, category := range materials.CategoryNames() {
		fmt.Printf("%s (x%.1f mass):\n", category, materials.MassMultiplier(category))
		for _, m := range materials.In(category) {
			fmt.Printf("  %s %v\n", m.Name, m.Colors)
		}
	}

	fmt.Println()
	fmt.Println("shape types:")
	registry := defs.DefaultRegistry()
	for _, typeName := range registry.Types() {
		fmt.Printf("  %s\n", typeName)
	}
	return nil
}
