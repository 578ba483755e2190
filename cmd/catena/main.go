package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/catena/internal/analyzer"
	"github.com/funvibe/catena/internal/config"
	"github.com/funvibe/catena/internal/dictionary"
	"github.com/funvibe/catena/internal/evaluator"
	"github.com/funvibe/catena/internal/parser"
	"github.com/funvibe/catena/internal/prettyprinter"
	"github.com/funvibe/catena/internal/typesystem"
	"github.com/mattn/go-isatty"
)

const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
)

var useColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func colorize(color, s string) string {
	if !useColor {
		return s
	}
	return color + s + colorReset
}

func main() {
	preludePath := flag.String("prelude", "", "extra prelude YAML with word signatures")
	storePath := flag.String("store", "", "SQLite word store for user definitions")
	formatOnly := flag.Bool("fmt", false, "reprint the source file formatted and exit")
	flag.Parse()

	if *formatOnly {
		if flag.NArg() == 0 {
			fatal(fmt.Errorf("-fmt needs a source file"))
		}
		if err := formatFile(flag.Arg(0)); err != nil {
			fatal(err)
		}
		return
	}

	dict := dictionary.New()
	if err := dictionary.LoadPrelude(dict); err != nil {
		fatal(err)
	}
	if *preludePath != "" {
		if err := dictionary.LoadPreludeFile(dict, *preludePath); err != nil {
			fatal(err)
		}
	}

	var store *dictionary.Store
	if *storePath != "" {
		var err error
		store, err = dictionary.OpenStore(*storePath)
		if err != nil {
			fatal(err)
		}
		defer store.Close()
		if n, err := store.LoadWords(dict); err != nil {
			fatal(err)
		} else if n > 0 {
			fmt.Fprintf(os.Stderr, "loaded %d word(s) from %s\n", n, *storePath)
		}
	}

	if flag.NArg() > 0 {
		if err := runFile(dict, flag.Arg(0)); err != nil {
			fatal(err)
		}
		return
	}
	repl(dict, store)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, colorize(colorRed, "error: ")+err.Error())
	os.Exit(1)
}

func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	program, err := parser.ParseSource(string(src))
	if err != nil {
		return err
	}
	fmt.Print(prettyprinter.Format(program))
	return nil
}

func runFile(dict *dictionary.Dictionary, path string) error {
	if filepath.Ext(path) == "" {
		path += config.SourceFileExt
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	program, err := parser.ParseSource(string(src))
	if err != nil {
		return err
	}
	eval := evaluator.New(dict)
	if err := eval.EvalProgram(program); err != nil {
		return err
	}
	fmt.Printf("%s : %s\n",
		colorize(colorGreen, eval.Stack().String()),
		colorize(colorCyan, eval.StackType().String()))
	return nil
}

func repl(dict *dictionary.Dictionary, store *dictionary.Store) {
	eval := evaluator.New(dict)
	inf := analyzer.New(dict)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("catena repl — :type EXPR, :words, :save, :load, :reset, :quit")
	for {
		fmt.Print("catena> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := replCommand(line, dict, store, eval, inf); quit {
				return
			}
			continue
		}

		program, err := parser.ParseSource(line)
		if err != nil {
			fmt.Println(colorize(colorRed, err.Error()))
			continue
		}
		if err := eval.EvalProgram(program); err != nil {
			fmt.Println(colorize(colorRed, err.Error()))
			continue
		}
		fmt.Printf("%s : %s\n",
			colorize(colorGreen, eval.Stack().String()),
			colorize(colorCyan, eval.StackType().String()))
	}
}

func replCommand(line string, dict *dictionary.Dictionary, store *dictionary.Store,
	eval *evaluator.Evaluator, inf *analyzer.Inferencer) bool {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case ":quit", ":q":
		return true
	case ":reset":
		eval.Reset()
	case ":words":
		for _, name := range dict.Words() {
			entry, _ := dict.Lookup(name)
			t := typesystem.AlphabetizeVarNames(entry.Type)
			fmt.Printf("%s : %s\n", name, colorize(colorCyan, t.String()))
		}
	case ":type":
		t, err := inf.InferSource(rest)
		if err != nil {
			fmt.Println(colorize(colorRed, err.Error()))
			break
		}
		fmt.Println(colorize(colorCyan, typesystem.AlphabetizeVarNames(t).String()))
	case ":save":
		if store == nil {
			fmt.Println(colorize(colorRed, "no word store (run with -store PATH)"))
			break
		}
		if err := store.SaveWords(dict); err != nil {
			fmt.Println(colorize(colorRed, err.Error()))
		}
	case ":load":
		if store == nil {
			fmt.Println(colorize(colorRed, "no word store (run with -store PATH)"))
			break
		}
		if n, err := store.LoadWords(dict); err != nil {
			fmt.Println(colorize(colorRed, err.Error()))
		} else {
			fmt.Printf("loaded %d word(s)\n", n)
		}
	default:
		fmt.Println(colorize(colorRed, "unknown command "+cmd))
	}
	return false
}
