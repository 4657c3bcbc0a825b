package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/syncopy/pkg/config"
)

func ExampleLoad_json() {
	ctx := context.Background()
	configJSON := `{
		"client": "memory",
		"source": "syn100",
		"destination": "syn200",
		"exclude_types": ["table"]
	}`

	tmpDir, err := os.MkdirTemp("", "syncopy-example-")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "syncopy.json")
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Println(cfg)
	fmt.Printf("Excluding: %v\n", cfg.ExcludeTypes)
	fmt.Printf("Provenance: %s\n", cfg.SetProvenance)

	// Output:
	// memory: syn100 -> syn200
	// Excluding: [table]
	// Provenance: traceback
}

func ExampleLoad_yaml() {
	ctx := context.Background()
	configYAML := `
client: memory
source: syn100
destination: syn200
version: 2
copy_wiki: false
`

	tmpDir, err := os.MkdirTemp("", "syncopy-example-")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "syncopy.yaml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	opts, err := cfg.Options(ctx)
	if err != nil {
		fmt.Printf("Error building options: %v\n", err)
		return
	}

	fmt.Println(cfg)
	fmt.Printf("Copy wiki: %v, update links: %v\n", opts.CopyWiki, opts.UpdateLinks)

	// Output:
	// memory: syn100.2 -> syn200
	// Copy wiki: false, update links: true
}

func ExampleConfig_Validate() {
	cfg := &config.Config{Client: "memory", Source: "syn100"}

	err := cfg.Validate()
	fmt.Printf("Validation error: %v\n", err)

	cfg.Destination = "syn200"
	err = cfg.Validate()
	fmt.Printf("Config is valid: %v\n", err == nil)

	// Output:
	// Validation error: destination is required
	// Config is valid: true
}
