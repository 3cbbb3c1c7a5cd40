package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sanity-io/litter"

	mornington "github.com/lilagelb/Mornington"
)

const appName = "mron"

func main() {
	os.Exit(run(os.Args[1:]))
}

func usage() {
	fmt.Fprintf(os.Stderr, `Mornington %s

Usage:
  %s [-ast] <file.mron>

Flags:
  -ast    dump the parsed tree instead of running the program
`, mornington.Version, appName)
}

func run(args []string) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.Usage = usage
	dumpAST := fs.Bool("ast", false, "dump the parsed tree instead of running")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		usage()
		return 2
	}
	file := fs.Arg(0)

	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	if *dumpAST {
		ast, perr := mornington.Parse(string(src))
		if perr != nil {
			fmt.Fprintln(os.Stderr, mornington.WrapErrorWithName(perr, file, string(src)).Error())
			return 1
		}
		litter.Dump(ast)
		return 0
	}

	ip := mornington.NewInterpreter()
	if err := ip.RunSource(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, mornington.WrapErrorWithName(err, file, string(src)).Error())
		return 1
	}
	return 0
}
