// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command apollo-config resolves a GraphQL project configuration from the
// current directory (config file, .env secrets, environment, defaults) and
// prints the resolved document as indented JSON on stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/apollo-config/config"
	"github.com/MKhiriev/apollo-config/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var (
		startPath     string
		fileName      string
		name          string
		projectType   string
		requireConfig bool
		verbose       bool
	)

	flag.StringVar(&startPath, "p", ".", "Path to start the config search from")
	flag.StringVar(&fileName, "c", "", "Config file name override")
	flag.StringVar(&fileName, "config", "", "Config file name override (alias)")
	flag.StringVar(&name, "n", "", "Explicit project name")
	flag.StringVar(&projectType, "t", "", "Explicit project type: client or service")
	flag.BoolVar(&requireConfig, "require", false, "Fail when no config file is found")
	flag.BoolVar(&verbose, "v", false, "Log resolution steps to stderr")
	flag.Parse()

	log := logger.Nop()
	if verbose {
		log = logger.NewLogger("apollo-config")
	}

	cfg, err := config.Resolve(config.ResolveSettings{
		StartPath:     startPath,
		FileName:      fileName,
		RequireConfig: requireConfig,
		Name:          name,
		Type:          config.Kind(projectType),
		Logger:        &log.Logger,
	})
	if err != nil {
		log.Error().Err(err).Msg("error resolving project configuration")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(resolvedView(cfg), "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("error encoding resolved configuration")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}

// resolvedView flattens the resolved config into a printable summary.
func resolvedView(cfg *config.Config) map[string]any {
	kind := "service"
	if cfg.IsClient() {
		kind = "client"
	}

	return map[string]any{
		"kind":         kind,
		"name":         cfg.Name(),
		"tag":          cfg.Tag(),
		"configDirURI": cfg.ConfigDirURI(),
		"config":       cfg.Raw(),
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
