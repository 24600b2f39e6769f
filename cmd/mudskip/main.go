package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"mudskip/pkg/shell"
)

const historyFile = ".mudskip_history"

func main() {
	exprFlag := flag.String("e", "", "Evaluate the given statement and exit")
	flag.Parse()

	if *exprFlag != "" {
		runStatement(*exprFlag)
		return
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Usage: mudskip [script] or mudskip -e \"statement\"\n")
		os.Exit(64) // Exit code 64: command line usage error
	} else if flag.NArg() == 1 {
		runFile(flag.Arg(0))
	} else {
		runRepl()
	}
}

// runStatement evaluates a single statement provided via the -e flag.
func runStatement(stmt string) {
	session, err := shell.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(70) // Exit code 70: internal software error
	}
	val, hasValue, err := session.Eval(stmt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(70)
	}
	if hasValue {
		fmt.Println(val.Inspect())
	}
}

// runFile evaluates a script file, one statement per line. Blank lines and
// lines starting with '#' are skipped.
func runFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", path, err)
		os.Exit(66) // Exit code 66: cannot open input
	}
	defer f.Close()

	session, err := shell.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(70)
	}

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, _, err := session.Eval(line); err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %v\n", path, lineNo, err)
			os.Exit(70)
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", path, err)
		os.Exit(74) // Exit code 74: input/output error
	}
}

// runRepl starts the interactive prompt.
func runRepl() {
	fmt.Println("mudskip object shell (:help for commands, :quit to exit)")

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

	session, err := shell.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(70)
	}

	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			switch line {
			case ":quit", ":q":
				return
			case ":push":
				session.EnterScope()
				fmt.Println("entered scope")
			case ":pop":
				session.ExitScope()
				fmt.Println("left scope")
			case ":globals":
				for _, name := range session.Globals().Names() {
					fmt.Println(name)
				}
			case ":help":
				printHelp()
			default:
				fmt.Println("unknown command. Type :help.")
			}
			continue
		}

		val, hasValue, err := session.Eval(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if hasValue {
			fmt.Println(val.Inspect())
		}
	}
}

func printHelp() {
	fmt.Print(`statements:
  a = {}                       create an object
  a.b = 42                     assign a property
  a.b                          read a property (prototype chain)
  delete a.b                   remove an own property
  Object.keys(a)               call a builtin
  a.hasOwnProperty("b")        call an inherited method
commands:
  :push / :pop                 enter or leave a nested scope
  :globals                     list global bindings
  :quit                        exit
`)
}
