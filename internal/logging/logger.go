package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

func New(level string, format string) (*logrus.Logger, error) {
	return NewWithOutput(os.Stdout, level, format)
}

func NewWithOutput(output io.Writer, level string, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.Out = output

	parsedLevel, err := logrus.ParseLevel(strings.TrimSpace(level))
	if strings.TrimSpace(level) == "" {
		parsedLevel, err = logrus.InfoLevel, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	logger.SetLevel(parsedLevel)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	return logger, nil
}
