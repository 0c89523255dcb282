package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...interface{}) { fmt.Println(args...) }

// RunREPL reads commands line by line and dispatches them to the app. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
func RunREPL(ctx context.Context, a *App, scanner *bufio.Scanner) {
	printlnFn("scheme monitor - type help for commands")

	for {
		printlnFn("sm> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn("Commands: list, search <text>, filter <name>, open <gs_no>, edit, set <field> <value>, setcomp <i> <field> <value>, commit, cancel, stage <bucket> <path...>, unstage <bucket> <i>, addcomp <name> [date], reports, project <gsNo>, pdf, exit")
		case "list":
			a.List(ctx)
		case "search":
			a.Search(ctx, strings.Join(args, " "))
		case "filter":
			a.Filter(ctx, strings.Join(args, " "))
		case "open":
			if len(args) != 1 {
				err = fmt.Errorf("usage: open <gs_no>")
			} else {
				err = a.Open(ctx, args[0])
			}
		case "edit":
			err = a.Edit()
		case "set":
			if len(args) < 2 {
				err = fmt.Errorf("usage: set <field> <value>")
			} else {
				err = a.Set(args[0], strings.Join(args[1:], " "))
			}
		case "setcomp":
			if len(args) < 3 {
				err = fmt.Errorf("usage: setcomp <i> <field> <value>")
			} else {
				err = a.SetComp(args[0], args[1], strings.Join(args[2:], " "))
			}
		case "commit":
			err = a.Commit(ctx)
		case "cancel":
			a.Cancel()
		case "stage":
			if len(args) < 2 {
				err = fmt.Errorf("usage: stage <before|after> <path...>")
			} else {
				err = a.Stage(ctx, args[0], args[1:])
			}
		case "unstage":
			if len(args) != 2 {
				err = fmt.Errorf("usage: unstage <before|after> <i>")
			} else {
				err = a.Unstage(args[0], args[1])
			}
		case "addcomp":
			if len(args) < 1 {
				err = fmt.Errorf("usage: addcomp <name> [date]")
			} else {
				date := "Not started"
				if len(args) > 1 {
					date = strings.Join(args[1:], " ")
				}
				err = a.AddComponent(ctx, args[0], date)
			}
		case "reports":
			err = a.Reports(ctx)
		case "project":
			if len(args) != 1 {
				err = fmt.Errorf("usage: project <gsNo>")
			} else {
				err = a.Project(ctx, args[0])
			}
		case "pdf":
			a.PDF()
		case "exit", "quit":
			return
		default:
			printlnFn("Unknown command: " + cmd)
		}

		if err != nil {
			printlnFn("Error: " + err.Error())
		}
	}
}
