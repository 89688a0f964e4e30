package helper

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

var baseLogger *zap.Logger
var logger *zap.SugaredLogger

func CheckError(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

func CheckErrorf(err error, template string, args ...interface{}) {
	if err != nil {
		errFormatStr := fmt.Sprintf("%s: %v", template, err)
		logger.Fatalf(errFormatStr, args...)
	}
}

func GetLogger(names []string) *zap.Logger {
	var newLogger = baseLogger.WithOptions(zap.AddStacktrace(zap.WarnLevel), zap.AddCaller(), zap.AddCallerSkip(1))
	for _, name := range names {
		newLogger = newLogger.Named(name)
	}

	return newLogger
}

func GetSugarLogger(names []string) *zap.SugaredLogger {
	return GetLogger(names).Sugar()
}

func init() {
	var err error
	baseLogger, err = zap.NewDevelopment()
	if err != nil {
		err = fmt.Errorf("error instantiating logger: %v", err)
		fmt.Println(err)
		os.Exit(1)
	}
	baseLogger = baseLogger.Named("measurements-koyeb")

	logger = GetSugarLogger([]string{"helper"})
}
