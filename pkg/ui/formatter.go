package ui

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// levelWidth pads the level tag so messages line up.
const levelWidth = 8

// LevelFormatter prints "LEVEL    message key=value ..." without timestamps.
type LevelFormatter struct {
	// Color wraps the level tag in an ANSI color, for terminals.
	Color bool
}

// Format implements logrus.Formatter.
func (f *LevelFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	tag := fmt.Sprintf("%-*s", levelWidth, levelName(entry.Level))
	b.WriteString(paint(f.Color, levelColor(entry.Level), tag))
	b.WriteByte(' ')
	b.WriteString(strings.TrimRight(entry.Message, "\n"))

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := entry.Data[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelName(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARNING"
	}
	return strings.ToUpper(level.String())
}

func levelColor(level logrus.Level) string {
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		return outlineGray
	case logrus.InfoLevel:
		return cobalt
	case logrus.WarnLevel:
		return honeyOrange
	case logrus.ErrorLevel:
		return flame
	default:
		return fuchsia
	}
}
