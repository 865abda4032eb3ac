package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// EntryLeveller filters log entries by logger name, walking the dot-separated
// name from most to least specific until a configured level matches.
type EntryLeveller struct {
	zapcore.Core

	levels map[string]zapcore.Level
}

func NewEntryLeveller(core zapcore.Core, levels map[string]zapcore.Level) *EntryLeveller {
	return &EntryLeveller{Core: core, levels: levels}
}

func (el *EntryLeveller) With(f []zapcore.Field) zapcore.Core {
	return &EntryLeveller{
		Core:   el.Core.With(f),
		levels: el.levels,
	}
}

func (el *EntryLeveller) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	name := e.LoggerName
	for {
		if level, ok := el.levels[name]; ok {
			if e.Level < level {
				return nil
			}
			return ce.AddCore(e, el)
		}
		if name == "" {
			break
		}
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[:i]
		} else {
			name = ""
		}
	}
	return el.Core.Check(e, ce)
}
