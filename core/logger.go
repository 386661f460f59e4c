package core

// Logger is the application logger. args may hold errors, extra data maps, a RequestInfo
// and the session user.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// RequestInfo identifies the API call a log entry is about.
type RequestInfo struct {
	Method string
	Path   string
	ID     string // X-Request-ID header
}

func (r RequestInfo) String() string {
	return r.Method + " " + r.Path + " [" + r.ID + "]"
}
