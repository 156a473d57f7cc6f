package logger

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
)

const debugEnv = "OBJGROUP_DEBUG"

var logger *zap.SugaredLogger

func init() {
	Init(false)
}

// Init rebuilds the global logger; debug or the OBJGROUP_DEBUG env switches to the development config.
func Init(debug bool) {
	if !debug {
		envDebug := strings.ToLower(os.Getenv(debugEnv))
		if len(envDebug) > 0 && !(envDebug == "disable" || envDebug == "false") {
			debug = true
		}
	}

	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	l, err := config.Build()
	if err != nil {
		log.Fatal(err)
	}

	zap.ReplaceGlobals(l)
	logger = zap.S()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

func Debugf(template string, args ...interface{}) {
	logger.Debugf(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	logger.Infow(msg, keysAndValues...)
}

func Sync() {
	_ = logger.Sync()
}
