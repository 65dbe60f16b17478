// Command weftdemo runs an interactive todo list on an in-memory render
// tree, driven by commands read from standard input. It exists to exercise
// the view tree end to end: events fired on rendered nodes flow back through
// thunks, mutate the store, and trigger rebuilds.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"src.weft.dev/pkg/errutil"
	"src.weft.dev/pkg/logutil"
	"src.weft.dev/pkg/todo"
	"src.weft.dev/pkg/weft"
	"src.weft.dev/pkg/weft/dom"
)

var logger = logutil.GetLogger("[weftdemo] ")

type flags struct {
	DB  string
	Log string
}

func newFlagSet(f *flags) *flag.FlagSet {
	fs := flag.NewFlagSet("weftdemo", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.DB, "db", "todo.db", "path to the database")
	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: weftdemo [flags]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fmt.Fprintln(out, "Commands: add <text>, toggle <n>, del <n>, filter all|active|done, show, quit")
}

func main() {
	os.Exit(run([3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args))
}

func run(fds [3]*os.File, args []string) int {
	f := &flags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args[1:]); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}
	if f.Log != "" {
		if err := logutil.SetOutputFile(f.Log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	store, err := todo.OpenStore(f.DB)
	if err != nil {
		fmt.Fprintln(fds[2], "cannot open database:", err)
		return 2
	}
	loopErr := loop(fds, store)
	if err := errutil.Multi(loopErr, store.Close()); err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	return 0
}

func loop(fds [3]*os.File, store *todo.Store) error {
	app, err := todo.NewApp(store)
	if err != nil {
		return err
	}
	root := weft.NewRoot()
	defer root.Teardown()
	root.Update(todo.View(app))

	interactive := isatty.IsTerminal(fds[0].Fd())
	show := func() { fmt.Fprintln(fds[1], dom.HTML(root.Element().(dom.Node))) }
	show()

	scanner := bufio.NewScanner(fds[0])
	for {
		if interactive {
			fmt.Fprint(fds[1], "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		cmd, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch cmd {
		case "":
		case "quit":
			return nil
		case "show":
			show()
		case "add":
			if err := app.Add(rest); err != nil {
				fmt.Fprintln(fds[2], err)
				continue
			}
			root.Update(todo.View(app))
			show()
		case "filter":
			filter, ok := todo.ParseFilter(rest)
			if !ok {
				fmt.Fprintln(fds[2], "unknown filter:", rest)
				continue
			}
			app.Filter = filter
			root.Update(todo.View(app))
			show()
		case "toggle", "del":
			n, err := strconv.Atoi(rest)
			if err != nil {
				fmt.Fprintln(fds[2], "not a number:", rest)
				continue
			}
			items := dom.FindAll(root.Element().(dom.Node), "li")
			if n < 1 || n > len(items) {
				fmt.Fprintln(fds[2], "no item", n)
				continue
			}
			event := "toggle"
			if cmd == "del" {
				event = "delete"
			}
			items[n-1].Fire(event, nil)
			actions, rebuild := root.Process(app)
			for _, a := range actions {
				if err, ok := a.(error); ok {
					fmt.Fprintln(fds[2], err)
				} else {
					logger.Println("unhandled action:", a)
				}
			}
			if rebuild {
				root.Update(todo.View(app))
				show()
			}
		default:
			fmt.Fprintln(fds[2], "unknown command:", cmd)
		}
	}
}
