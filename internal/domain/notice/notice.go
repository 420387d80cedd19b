// Package notice models the short-lived feedback messages shown to a user
// after an operation succeeds or fails.
package notice

import "time"

// Level is the notice severity.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// DefaultDuration is how long a notice stays active when none is given.
const DefaultDuration = 5 * time.Second

// Notice is one message in a user's notification feed.
type Notice struct {
	ID        string
	Level     Level
	Message   string
	Duration  time.Duration
	CreatedAt time.Time
}

// Success builds a success notice.
func Success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }

// Failure builds an error notice.
func Failure(msg string) Notice { return Notice{Level: LevelError, Message: msg} }

// Info builds an informational notice.
func Info(msg string) Notice { return Notice{Level: LevelInfo, Message: msg} }
