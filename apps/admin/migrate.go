package main

import (
	"database/sql"

	"github.com/pressly/goose/v3"

	appfs "github.com/FidelisKagashe26/godcares/fs"
)

var gooseRunFunc = goose.Run // mockable

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errDBDisabled
	}
	goose.SetBaseFS(appfs.FS)
	if err := goose.SetDialect(cli.conf.Database.Engine); err != nil {
		return err
	}
	return runGoose(cli.db, args[0], args[1:]...)
}

func runGoose(db *sql.DB, command string, args ...string) error {
	return gooseRunFunc(command, db, "migrations", args...)
}
