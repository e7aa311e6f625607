package debug

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/devops"
	"github.com/sirupsen/logrus"

	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/config"
)

// EinoDebugger runs the Eino visual debug server so LLM call chains can be
// inspected through the web interface during development.
type EinoDebugger struct {
	config *config.Config
	ctx    context.Context
	log    *logrus.Entry
}

func NewEinoDebugger(cfg *config.Config) *EinoDebugger {
	return &EinoDebugger{
		config: cfg,
		ctx:    context.Background(),
		log:    logrus.WithField("component", "eino-debug"),
	}
}

func (d *EinoDebugger) Start() error {
	if !d.config.EinoDebugEnabled {
		return nil
	}

	if err := devops.Init(d.ctx); err != nil {
		return fmt.Errorf("failed to initialize Eino debug plugin: %w", err)
	}

	d.log.WithField("url", d.DebugURL()).Info("Eino debug server running")
	return nil
}

func (d *EinoDebugger) IsEnabled() bool {
	return d.config.EinoDebugEnabled
}

func (d *EinoDebugger) DebugURL() string {
	if !d.config.EinoDebugEnabled {
		return ""
	}
	return fmt.Sprintf("http://localhost:%d", d.config.EinoDebugPort)
}
