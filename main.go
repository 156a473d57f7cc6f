package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/m4gshm/objgroup/command"
	"github.com/m4gshm/objgroup/demo"
	"github.com/m4gshm/objgroup/logger"
	"github.com/m4gshm/objgroup/params"
)

var errUnknownCommand = errors.New("unknown command")

func usage() {
	fmt.Fprintln(os.Stderr, "Usage of "+params.Name+":")
	fmt.Fprintln(os.Stderr, "\t"+params.Name+" [flags] [command [command flags]]")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
	command.PrintUsage()
}

func main() {
	log.SetPrefix(params.Name + ": ")

	config := params.NewConfig(flag.CommandLine)

	flag.Usage = usage
	flag.Parse()

	logger.Init(*config.Debug)
	defer logger.Sync()

	if err := run(config, flag.Args(), os.Stdout); errors.Is(err, errUnknownCommand) {
		log.Print(err)
		flag.Usage()
		logger.Sync()
		os.Exit(2)
	} else if err != nil {
		fatal(err)
	}
}

// run executes the command from args, or the group names demonstration when there is no command.
func run(config *params.Config, args []string, out io.Writer) error {
	context, err := command.NewContext(config, out)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if len(context.Records) == 0 {
			demo.Empty()
		} else {
			demo.Run(context.Records)
		}
		return nil
	}

	cmdName := args[0]
	cmd := command.Get(cmdName)
	if cmd == nil {
		return errors.WithMessagef(errUnknownCommand, "'%s', supported %v", cmdName, command.Supported())
	}
	if unused, err := cmd.Parse(args[1:]); err != nil {
		return err
	} else if len(unused) > 0 {
		logger.Debugw("unused arguments", "command", cmdName, "args", unused)
	}
	logger.Debugw("run", "command", cmdName, "records", len(context.Records))
	return cmd.Run(context)
}

// fatal flushes the logger that deferred calls would miss on exit.
func fatal(err error) {
	logger.Sync()
	log.Fatal(err)
}
