package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

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
)

type (
	ServerDeps struct {
		Conf   *core.Config
		Logger core.Logger

		AboutSvc     about.Service
		DonationSvc  donation.Service
		FaithSvc     faith.Service
		LibrarySvc   library.Service
		NewsSvc      news.Service
		PrayerSvc    prayer.Service
		ShopSvc      shop.Service
		TestimonySvc testimony.Service
		VaultSvc     vault.Service
		LessonSvc    lesson.Service
		VisitorSvc   visitor.Service
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		ServerDeps: deps,
		app:        echo.New(),
		errors:     make(chan error, 1),
		shutdown:   make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.Conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.Conf.Debug || s.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{s.Conf.FrontendBaseURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.Logger, s.signalShutdown)
	s.app.Debug = s.Conf.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(newJWTConfig(s.Conf, false))
	optionalJWT := middleware.JWTWithConfig(newJWTConfig(s.Conf, true))

	s.registerVisitorAPI(v1, jwt)
	s.registerHomeAPI(v1, optionalJWT)
	s.registerContentAPI(v1)
	s.registerNewsAPI(v1)
	s.registerDonationAPI(v1)
	s.registerPrayerAPI(v1)
	s.registerShopAPI(v1)
	s.registerTestimonyAPI(v1)
	s.registerVaultAPI(v1)
	s.registerLessonAPI(v1, jwt, optionalJWT)
}

func (s *server) Start() {
	if err := s.app.Start(s.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errors
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default:
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Karibu "+s.Conf.AppName+"!")
}
