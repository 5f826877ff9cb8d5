package logging

import (
	"errors"
	"fmt"
	"net"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

const hookSource = "medmind"

var (
	ErrElasticURLRequired  = errors.New("elasticsearch url is required when elk shipping is enabled")
	ErrLogstashURLRequired = errors.New("logstash url is required when logstash shipping is enabled")
)

type HookConfig struct {
	ElkEnable      bool
	ElkURL         string
	ElkIndex       string
	LogstashEnable bool
	LogstashURL    string
}

// AttachHooks adds the enabled log shipping hooks to logger.
func AttachHooks(logger *logrus.Logger, config HookConfig) error {
	if config.ElkEnable {
		if config.ElkURL == "" {
			return ErrElasticURLRequired
		}
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{config.ElkURL},
		})
		if err != nil {
			return fmt.Errorf("create elasticsearch client: %w", err)
		}
		index := config.ElkIndex
		if index == "" {
			index = hookSource
		}
		hook, err := elogrus.NewAsyncElasticHook(client, hookSource, logger.GetLevel(), index)
		if err != nil {
			return fmt.Errorf("create elasticsearch hook: %w", err)
		}
		logger.AddHook(hook)
	}

	if config.LogstashEnable {
		if config.LogstashURL == "" {
			return ErrLogstashURLRequired
		}
		conn, err := net.Dial("udp", config.LogstashURL)
		if err != nil {
			return fmt.Errorf("dial logstash: %w", err)
		}
		logger.AddHook(logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": hookSource})))
	}

	return nil
}
