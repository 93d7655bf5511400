package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/lesson"
	"github.com/FidelisKagashe26/godcares/core/news"
	"github.com/FidelisKagashe26/godcares/core/shop"
	"github.com/FidelisKagashe26/godcares/core/visitor"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp       = errors.New("help provided")
	errDBDisabled = errors.New("database is disabled (set database.enabled)")
)

type commandLine struct {
	conf *core.Config
	db   *sql.DB
	out  io.Writer
	in   io.Reader

	newsSvc    news.Service
	shopSvc    shop.Service
	visitorSvc visitor.Service
	lessonSvc  lesson.Service
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]              - run a goose command on the visitor store")
	fmt.Fprintln(cli.out, "  track -code CODE                    - look up a shop order")
	fmt.Fprintln(cli.out, "  news [-tab TAB] [-q SEARCH]         - list news items")
	fmt.Fprintln(cli.out, "  welcome-reset -visitor ID           - show the welcome popup again to a visitor")
	fmt.Fprintln(cli.out, "  quiz -course COURSE -lesson LESSON  - take a lesson quiz in the terminal")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	trackCmd := flag.NewFlagSet("track", flag.ContinueOnError)
	trackCode := trackCmd.String("code", "", "The order tracking code.")

	newsCmd := flag.NewFlagSet("news", flag.ContinueOnError)
	newsTab := newsCmd.String("tab", "", "Category tab.")
	newsSearch := newsCmd.String("q", "", "Search term.")

	welcomeCmd := flag.NewFlagSet("welcome-reset", flag.ContinueOnError)
	welcomeVisitor := welcomeCmd.String("visitor", "", "The visitor id.")

	quizCmd := flag.NewFlagSet("quiz", flag.ContinueOnError)
	quizCourse := quizCmd.String("course", "", "The course id.")
	quizLesson := quizCmd.String("lesson", "", "The lesson id.")

	for _, fs := range []*flag.FlagSet{trackCmd, newsCmd, welcomeCmd, quizCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "track":
		if err := trackCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *trackCode == "" {
			trackCmd.Usage()
			return errHelp
		}
		return cli.track(*trackCode)
	case "news":
		if err := newsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listNews(*newsTab, *newsSearch)
	case "welcome-reset":
		if err := welcomeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *welcomeVisitor == "" {
			welcomeCmd.Usage()
			return errHelp
		}
		return cli.resetWelcome(*welcomeVisitor)
	case "quiz":
		if err := quizCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *quizCourse == "" || *quizLesson == "" {
			quizCmd.Usage()
			return errHelp
		}
		return cli.quiz(*quizCourse, *quizLesson)
	default:
		cli.printUsage()
		return errHelp
	}
}

// render prints rows as a table on a terminal, and obj as JSON otherwise.
func (cli *commandLine) render(obj interface{}, header string, rows ...string) error {
	if f, ok := cli.out.(*os.File); ok && isTerminalFunc(int(f.Fd())) {
		w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, header)
		for _, r := range rows {
			fmt.Fprintln(w, r)
		}
		return w.Flush()
	}
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}
