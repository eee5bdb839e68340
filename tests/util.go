package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/educonnect/core"
	"github.com/trezcool/educonnect/core/session"
)

// NewDirectory returns the demo directory hashed with the cheapest bcrypt cost.
func NewDirectory(t *testing.T) *session.Directory {
	t.Helper()
	dir, err := session.NewDemoDirectory(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewDemoDirectory() failed: %v", err)
	}
	return dir
}

// Login logs the demo account with email in through svc.
func Login(t *testing.T, svc *session.Service, email string) session.User {
	t.Helper()
	usr, err := svc.Login(context.Background(), email, session.DemoPassword)
	if err != nil {
		t.Fatalf("Login(%s) failed: %v", email, err)
	}
	return usr
}

// Logger records messages instead of printing them.
type Logger struct {
	mu       sync.Mutex
	Messages []string
}

var _ core.Logger = (*Logger)(nil)

func (l *Logger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, fmt.Sprintf("%s: %s", level, msg))
}

func (l *Logger) Debug(msg string, _ ...interface{}) { l.log("DEBUG", msg) }
func (l *Logger) Info(msg string, _ ...interface{})  { l.log("INFO", msg) }
func (l *Logger) Warn(msg string, _ ...interface{})  { l.log("WARN", msg) }
func (l *Logger) Error(msg string, _ ...interface{}) { l.log("ERROR", msg) }
func (l *Logger) Fatal(msg string, _ ...interface{}) { l.log("FATAL", msg) }

// Count returns how many messages were logged at level.
func (l *Logger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int
	for _, m := range l.Messages {
		if strings.HasPrefix(m, level+": ") {
			n++
		}
	}
	return n
}
