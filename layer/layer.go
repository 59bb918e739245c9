// Package layer holds the code that functions receive through a shared Lambda
// layer rather than bundling it themselves.
package layer

// Prefix starts every message written by DoSomethingOnLayer.
const Prefix = "Doing something on layer"

// Logger is the logging capability handed to layer code by the calling
// function. One Log call produces one log line.
type Logger interface {
	Log(message string)
}

// LoggerFunc lets an ordinary function act as a Logger.
type LoggerFunc func(message string)

func (f LoggerFunc) Log(message string) {
	f(message)
}

// Message returns the line DoSomethingOnLayer logs for s. There is no
// separator between the prefix and s.
func Message(s string) string {
	return Prefix + s
}

func DoSomethingOnLayer(logger Logger, s string) {
	logger.Log(Message(s))
}
