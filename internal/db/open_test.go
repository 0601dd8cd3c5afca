package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type recordingWriter struct{ lines []string }

func (w *recordingWriter) Printf(format string, args ...any) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func TestNewLogger_SkipsMissingRows(t *testing.T) {
	for _, quiet := range []bool{true, false} {
		w := &recordingWriter{}
		l := newLogger(w, quiet)
		query := func() (string, int64) {
			return "SELECT * FROM `users` WHERE email = 'nobody@company.com'", 0
		}

		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
		assert.Empty(t, w.lines, "quiet=%v", quiet)

		l.Trace(context.Background(), time.Now(), query, errors.New("connection reset"))
		if assert.Len(t, w.lines, 1) {
			assert.True(t, strings.Contains(w.lines[0], "connection reset"))
		}
	}
}
