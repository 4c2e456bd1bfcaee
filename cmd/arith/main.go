// Command arith evaluates infix arithmetic expressions. With
// arguments, each argument is evaluated and printed; without, it runs
// an interactive calculator.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/peterh/liner"

	"go.creack.net/arith"
	"go.creack.net/arith/simplify"
	"go.creack.net/arith/value"
)

const historyFile = ".arith_history"

var (
	flEcho = flag.Bool("echo", false, "print parse trees before results")
	flJSON = flag.Bool("json", false, "print results as tagged-record JSON instead of numbers")
)

func main() {
	flag.Parse()

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			if err := evalLine(arg); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		return
	}

	if err := repl(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func evalLine(input string) error {
	expr, err := arith.ParseExpr(input)
	if err != nil {
		return err
	}
	if *flEcho {
		if _, err := pretty.Println(expr); err != nil {
			return err
		}
	}
	folded := simplify.Simplify(expr)
	if *flJSON {
		fmt.Println(value.FromExpr(folded))
		return nil
	}
	fmt.Println(folded.Dump())
	return nil
}

func repl() error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := evalLine(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		ln.AppendHistory(line)
	}
}
