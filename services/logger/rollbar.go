package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/FidelisKagashe26/godcares/core"
)

// RollbarLogger prints every entry to std and reports it to rollbar (when enabled).
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	rollbar.SetCustom(map[string]interface{}{"app": conf.AppName, "api": conf.API.BaseURL})
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// Close waits for queued items to reach rollbar.
func (l RollbarLogger) Close() {
	rollbar.Wait()
}

// rollbarArgs pulls the first core.Person out of args and reports it as the rollbar person.
// Visitors are anonymous: only their id is known.
// expected fmt: msg | error, map[string]interface{}, core.Person
func rollbarArgs(msg string, args []interface{}) []interface{} {
	var person *core.Person
	out := make([]interface{}, 0, len(args)+1)
	out = append(out, msg)
	for _, arg := range args {
		p, ok := arg.(core.Person)
		switch {
		case !ok:
			out = append(out, arg)
		case person == nil && p.ID != "":
			person = &p
		}
	}

	if person == nil {
		rollbar.ClearPerson()
	} else {
		username := person.Username
		if username == "" {
			username = "visitor"
		}
		rollbar.SetPerson(person.ID, username, person.Email)
	}
	return out
}

func (l RollbarLogger) log(level, msg string, args []interface{}) {
	rollbar.Log(level, rollbarArgs(msg, args)...)

	l.std.Printf("[%s] %s", level, msg)
	for _, arg := range args {
		if _, ok := arg.(core.Person); ok {
			continue
		}
		l.std.Printf("%+v\n", arg)
	}
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) { l.log(rollbar.DEBUG, msg, args) }

func (l RollbarLogger) Info(msg string, args ...interface{}) { l.log(rollbar.INFO, msg, args) }

func (l RollbarLogger) Warn(msg string, args ...interface{}) { l.log(rollbar.WARN, msg, args) }

func (l RollbarLogger) Error(msg string, args ...interface{}) { l.log(rollbar.ERR, msg, args) }

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.log(rollbar.CRIT, msg, args)
	rollbar.Wait()
	l.std.Fatal(msg)
}
