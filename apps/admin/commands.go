package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/lesson"
	"github.com/FidelisKagashe26/godcares/core/news"
	"github.com/FidelisKagashe26/godcares/core/shop"
)

func (cli *commandLine) track(code string) error {
	order, err := cli.shopSvc.Track(context.Background(), shop.TrackQuery{Code: code})
	if err != nil {
		return err
	}
	rows := make([]string, 0, len(order.Items)+1)
	rows = append(rows, fmt.Sprintf("%s\t%s\t\t%.2f %s", order.TrackingCode, order.Status, order.Total, order.Currency))
	for _, l := range order.Items {
		rows = append(rows, fmt.Sprintf("\t\t%s x%d\t%.2f", l.Name, l.Quantity, l.Subtotal()))
	}
	return cli.render(order, "CODE\tSTATUS\tITEM\tTOTAL", rows...)
}

func (cli *commandLine) listNews(tab, search string) error {
	items, err := cli.newsSvc.Items(context.Background(), news.QueryFilter{Tab: tab, Search: search})
	if err != nil {
		return err
	}
	rows := make([]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, fmt.Sprintf("%d\t%s\t%s\t%d", it.ID, it.Category, it.Title, it.Views))
	}
	return cli.render(items, "ID\tCATEGORY\tTITLE\tVIEWS", rows...)
}

func (cli *commandLine) resetWelcome(visitorID string) error {
	if err := cli.visitorSvc.ResetWelcome(context.Background(), visitorID); err != nil {
		return errors.Wrapf(err, "resetting welcome of %s", visitorID)
	}
	fmt.Fprintf(cli.out, "welcome popup reset for %s\n", visitorID)
	return nil
}

// quiz plays a lesson quiz on cli.in: one option number (1-based) per line.
func (cli *commandLine) quiz(courseID, lessonID string) error {
	l, err := cli.lessonSvc.Lesson(context.Background(), courseID, lessonID)
	if err != nil {
		return errors.Wrapf(err, "getting lesson %s/%s", courseID, lessonID)
	}

	session := lesson.NewQuizSession(l)
	fmt.Fprintf(cli.out, "%s (%s)\n", l.Title, l.Scripture)
	if err = session.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cli.in)
	for session.Stage() == lesson.StageQuestion {
		q, i, _ := session.Current()
		fmt.Fprintf(cli.out, "\n%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(cli.out, "   %d) %s\n", j+1, opt)
		}
		fmt.Fprint(cli.out, "> ")

		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return err
			}
			return errors.New("quiz aborted")
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(cli.out, "enter an option number")
			continue
		}
		if err = session.Answer(choice - 1); err == lesson.ErrBadOption {
			fmt.Fprintln(cli.out, "no such option")
			continue
		} else if err != nil {
			return err
		}
	}

	res, _ := session.Result()
	verdict := "not passed"
	if res.Passed {
		verdict = "passed"
	}
	fmt.Fprintf(cli.out, "\nscore: %d%% (%d/%d) - %s\n", res.Score, res.Correct, res.Total, verdict)
	return nil
}
