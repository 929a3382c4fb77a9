// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"golang.org/x/text/language"

	"github.com/ezrec/dodgevm/translate"
)

type Options struct {
	Verbose  bool   `short:"v" long:"verbose" description:"Verbose logging"`
	Language string `long:"lang" description:"Message language, overriding the environment locale"`
}

var (
	opts        Options
	flagsparser = flags.NewParser(&opts, flags.Default)
)

func setup() error {
	if len(opts.Language) != 0 {
		tag, err := language.Parse(opts.Language)
		if err != nil {
			return err
		}
		translate.SetLanguage(tag)
	}

	return nil
}

func main() {
	flagsparser.CommandHandler = func(command flags.Commander, args []string) error {
		err := setup()
		if err != nil {
			return err
		}
		return command.Execute(args)
	}

	if _, err := flagsparser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case *flags.Error:
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			log.Printf("%v: %v", os.Args[0], err)
			os.Exit(1)
		}
	}
}
