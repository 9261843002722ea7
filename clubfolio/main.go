package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/clubfolio/clubfolio/cmd"
)

func main() {
	// Load .env if present (do not overwrite already-set environment variables),
	// so API keys and the club/user ids are available when running locally.
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	// Shell completion: this exits early when invoked by the shell.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"create-club": {},
			"join":        {},
			"members":     {},
			"link-bank":   {},
			"deposit":     {},
			"withdraw":    {},
			"buy":         {},
			"sell":        {},
			"summary":     {},
			"snapshot":    {},
			"history":     {},
			"log":         {},
			"insight":     {},
			"topic":       {},
		},
		Flags: map[string]complete.Predictor{
			"db": predict.Files("*.db"),
		},
	}
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
