package logsvc

import (
	"log"
	"strconv"
	"strings"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

// RollbarLogger writes one line per entry to std and reports it to rollbar when enabled.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetPlatform("client")
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// entry is a log call split into what rollbar and the std logger need.
type entry struct {
	msg    string
	err    error
	req    *core.RequestInfo
	sess   user.Session
	extras map[string]interface{}
}

func newEntry(msg string, args []interface{}) entry {
	e := entry{msg: msg, extras: make(map[string]interface{})}
	for _, arg := range args {
		switch v := arg.(type) {
		case error:
			if e.err == nil {
				e.err = v
			}
		case core.RequestInfo:
			e.req = &v
			e.extras["method"] = v.Method
			e.extras["path"] = v.Path
			e.extras["request_id"] = v.ID
		case map[string]interface{}:
			for k, val := range v {
				e.extras[k] = val
			}
		case user.Session:
			if e.sess == nil && user.IsAuthenticated(v) {
				e.sess = v
			}
		}
	}
	return e
}

// rollbarArgs gives the arguments of rollbar.Log and sets the reported person.
func (e entry) rollbarArgs() []interface{} {
	if e.sess != nil {
		rollbar.SetPerson(strconv.Itoa(e.sess.UserID()), e.sess.UserCompleteName(), e.sess.UserGroup())
	} else {
		rollbar.ClearPerson()
	}

	// rollbar drops the message when an error is given
	args := []interface{}{e.msg}
	if e.err != nil {
		e.extras["message"] = e.msg
		args = append(args, e.err)
	}
	if len(e.extras) > 0 {
		args = append(args, e.extras)
	}
	return args
}

// line formats e as "LEVEL METHOD PATH [request id] msg: err (user N)".
func (e entry) line(level string) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(level))
	if e.req != nil {
		b.WriteString(" " + e.req.String())
	}
	b.WriteString(" " + e.msg)
	if e.err != nil {
		b.WriteString(": " + e.err.Error())
	}
	if e.sess != nil {
		b.WriteString(" (user " + strconv.Itoa(e.sess.UserID()) + ")")
	}
	return b.String()
}

func (l RollbarLogger) log(level, msg string, args []interface{}) entry {
	e := newEntry(msg, args)
	rollbar.Log(level, e.rollbarArgs()...)
	l.std.Println(e.line(level))
	return e
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	l.log(rollbar.DEBUG, msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	l.log(rollbar.INFO, msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	l.log(rollbar.WARN, msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	l.log(rollbar.ERR, msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	e := l.log(rollbar.CRIT, msg, args)
	rollbar.Wait()
	l.std.Fatal(e.line(rollbar.CRIT))
}
