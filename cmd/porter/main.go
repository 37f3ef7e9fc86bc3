package main

import (
	"os"

	log "github.com/go-pkgz/lgr"
	flags "github.com/jessevdk/go-flags"
)

// Opts with all cli commands and flags
type Opts struct {
	StemCmd  StemCommand  `command:"stem" description:"stem words given as arguments, or one per stdin line"`
	ServeCmd ServeCommand `command:"serve" description:"run the http stemming service"`

	Dbg bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "unknown"

func main() {
	var opts Opts
	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(command flags.Commander, args []string) error {
		setupLog(opts.Dbg)
		if c, ok := command.(*ServeCommand); ok {
			c.Revision = revision
		}
		err := command.Execute(args)
		if err != nil {
			log.Printf("[ERROR] failed with %+v", err)
		}
		return err
	}

	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// logs go to stderr, stdout carries stems
func setupLog(dbg bool) {
	if dbg {
		log.Setup(log.Out(os.Stderr), log.Debug, log.CallerFile, log.Msec, log.LevelBraces)
		return
	}
	log.Setup(log.Out(os.Stderr), log.Msec, log.LevelBraces)
}
