package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop().Sugar()

// Init builds the process logger. Development gets a human console logger
// at debug level; anything else gets production JSON at info level.
func Init(environment string) {
	var cfg zap.Config
	if environment == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	log = l.Sugar()
}

func Debug(msg string, args ...any) { log.Debugw(msg, kv(args)...) }
func Info(msg string, args ...any)  { log.Infow(msg, kv(args)...) }
func Warn(msg string, args ...any)  { log.Warnw(msg, kv(args)...) }
func Error(msg string, args ...any) { log.Errorw(msg, kv(args)...) }
func Fatal(msg string, args ...any) { log.Fatalw(msg, kv(args)...) }

// kv repairs loose arguments (a bare error, an odd trailing value) into the
// key/value pairs the sugared logger expects.
func kv(args []any) []any {
	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); {
		if s, ok := args[i].(string); ok && i+1 < len(args) {
			out = append(out, s, args[i+1])
			i += 2
			continue
		}
		if err, ok := args[i].(error); ok {
			out = append(out, "error", err)
		} else {
			out = append(out, "detail", args[i])
		}
		i++
	}
	return out
}
