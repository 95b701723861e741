package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"chosenoffset.com/blorp/internal/placeholders"
	"chosenoffset.com/blorp/internal/simulation"
)

func main() {
	flags := pflag.NewFlagSet("genplaceholders", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "config file naming the asset manifest")
	root := flags.String("root", "", "write under this directory instead of assets.root")
	overwrite := flags.Bool("overwrite", false, "replace files that already exist")
	_ = flags.Parse(os.Args[1:])

	fmt.Println("Blorp Placeholder Graphics Generator")
	fmt.Println("====================================")
	fmt.Println()

	cfg, err := simulation.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	manifest := cfg.Assets
	if *root != "" {
		manifest.Root = *root
	}

	written, err := placeholders.GenerateAndSave(manifest, *overwrite)
	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Done! %d placeholder graphics written under %s.\n", len(written), manifest.Root)
	fmt.Println("Run the game to see your placeholders in action!")
}
