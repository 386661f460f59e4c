package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

func newTestLogger() (*RollbarLogger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	logger := NewRollbarLogger(log.New(buf, "", 0), &core.Config{Env: "TEST"})
	logger.Enable(false)
	return logger, buf
}

func Test_newEntry(t *testing.T) {
	req := core.RequestInfo{Method: "GET", Path: "/materias/", ID: "req-1"}
	sess := user.Identity{ID: 7, Group: user.GroupAdmin, Token: "abc"}
	err := errors.New("boom")

	e := newEntry("api request failed", []interface{}{err, req, map[string]interface{}{"attempt": 1}, sess})
	assert.Equal(t, err, e.err)
	assert.Equal(t, &req, e.req)
	assert.Equal(t, sess, e.sess)
	assert.Equal(t, map[string]interface{}{
		"attempt":    1,
		"method":     "GET",
		"path":       "/materias/",
		"request_id": "req-1",
	}, e.extras)

	anon := newEntry("hello", []interface{}{user.Identity{ID: 3}})
	assert.Nil(t, anon.sess)
	assert.Nil(t, anon.req)
	assert.Empty(t, anon.extras)
}

func TestRollbarLogger_lines(t *testing.T) {
	logger, buf := newTestLogger()
	req := core.RequestInfo{Method: "DELETE", Path: "/materias/", ID: "req-2"}

	logger.Error("api request failed", errors.New("api: 500 boom"), req, user.Identity{ID: 7, Token: "abc"})
	assert.Equal(t, "ERROR DELETE /materias/ [req-2] api request failed: api: 500 boom (user 7)\n", buf.String())

	buf.Reset()
	logger.Warn("teacher list unavailable")
	assert.Equal(t, "WARNING teacher list unavailable\n", buf.String())

	buf.Reset()
	logger.Info("api request rejected", req)
	assert.Equal(t, "INFO DELETE /materias/ [req-2] api request rejected\n", buf.String())
}
