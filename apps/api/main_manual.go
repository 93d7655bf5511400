package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/FidelisKagashe26/godcares/apps/api/echo"
	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/about"
	"github.com/FidelisKagashe26/godcares/core/donation"
	"github.com/FidelisKagashe26/godcares/core/faith"
	"github.com/FidelisKagashe26/godcares/core/lesson"
	"github.com/FidelisKagashe26/godcares/core/library"
	"github.com/FidelisKagashe26/godcares/core/news"
	"github.com/FidelisKagashe26/godcares/core/prayer"
	"github.com/FidelisKagashe26/godcares/core/shop"
	"github.com/FidelisKagashe26/godcares/core/testimony"
	"github.com/FidelisKagashe26/godcares/core/vault"
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

func startManual() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)
	defer logger.Close()

	// set up the visitor store
	var visitorRepo visitor.Repository
	if conf.Database.Enabled {
		dbLogger := logsvc.NewRollbarLogger(
			log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
			conf,
		)
		dbLogger.Enable(!conf.Debug)

		db, err := setUpDB(conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
		}
		defer func() {
			if err = db.Close(); err != nil {
				dbLogger.Error("Failed to close", err)
			}
		}()
		visitorRepo = sqlxrepos.NewVisitorRepository(db)
	} else {
		logger.Info("database disabled: visitor preferences are kept in memory")
		visitorRepo = inmemdb.NewVisitorRepository()
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	client := backendapi.NewClient(conf, logger)
	deps := echoapi.ServerDeps{
		Conf:         conf,
		Logger:       logger,
		AboutSvc:     about.NewService(backendapi.NewAboutRepository(client)),
		DonationSvc:  donation.NewService(backendapi.NewDonationRepository(client), mailSvc),
		FaithSvc:     faith.NewService(backendapi.NewFaithRepository(client)),
		LibrarySvc:   library.NewService(backendapi.NewLibraryRepository(client)),
		NewsSvc:      news.NewService(backendapi.NewNewsRepository(client)),
		PrayerSvc:    prayer.NewService(backendapi.NewPrayerRepository(client)),
		ShopSvc:      shop.NewService(backendapi.NewShopRepository(client), mailSvc),
		TestimonySvc: testimony.NewService(backendapi.NewTestimonyRepository(client)),
		VaultSvc:     vault.NewService(backendapi.NewVaultRepository(client), logger),
		LessonSvc:    lesson.NewService(bundle.NewLessonRepository(appfs.FS), lesson.NewProgress()),
		VisitorSvc:   visitor.NewService(visitorRepo),
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	core.ParseEmailTemplates(appfs.FS, conf, logger)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("api").Set(conf.API.BaseURL)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddress, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(deps)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db, conf); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
