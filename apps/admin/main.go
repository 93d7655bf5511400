package main

import (
	"log"
	"os"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/lesson"
	"github.com/FidelisKagashe26/godcares/core/news"
	"github.com/FidelisKagashe26/godcares/core/shop"
	"github.com/FidelisKagashe26/godcares/core/visitor"
	appfs "github.com/FidelisKagashe26/godcares/fs"
	emailsvc "github.com/FidelisKagashe26/godcares/services/email"
	logsvc "github.com/FidelisKagashe26/godcares/services/logger"
	"github.com/FidelisKagashe26/godcares/storage/backendapi"
	"github.com/FidelisKagashe26/godcares/storage/bundle"
	"github.com/FidelisKagashe26/godcares/storage/database"
	inmemdb "github.com/FidelisKagashe26/godcares/storage/database/inmem"
	sqlxrepos "github.com/FidelisKagashe26/godcares/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug)
	defer logger.Close()

	cli := &commandLine{
		conf:      conf,
		out:       os.Stdout,
		in:        os.Stdin,
		lessonSvc: lesson.NewService(bundle.NewLessonRepository(appfs.FS), lesson.NewProgress()),
	}

	client := backendapi.NewClient(conf, logger)
	cli.newsSvc = news.NewService(backendapi.NewNewsRepository(client))
	cli.shopSvc = shop.NewService(backendapi.NewShopRepository(client), emailsvc.NewConsoleService(conf, logger))

	if conf.Database.Enabled {
		db, err := database.Open(conf)
		if err != nil {
			logger.Fatal(err.Error(), err)
		}
		defer db.Close()
		cli.db = db.DB
		cli.visitorSvc = visitor.NewService(sqlxrepos.NewVisitorRepository(db))
	} else {
		cli.visitorSvc = visitor.NewService(inmemdb.NewVisitorRepository())
	}

	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err)
		}
		logger.Close()
		os.Exit(1)
	}
}
