// Package checklib drives a Chrome session against a running web
// application and verifies computed-style layout contracts on overlay
// elements located by a stable marker selector.
package checklib

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"gopkg.in/ini.v1"
)

const (
	// DefaultTargetURL is the local development address the harness
	// points at when neither config.ini nor flags override it.
	DefaultTargetURL = "http://localhost:3000/"

	// DefaultMarkerSelector identifies the transient overlay elements.
	// The fixture renders the same class; changing one side without the
	// other breaks the contract.
	DefaultMarkerSelector = ".balloons"
)

type CheckOptions struct {
	Scenario          string
	TargetURL         string
	MarkerSelector    string
	InstanceIndex     int
	WaitBudget        time.Duration
	PollInterval      time.Duration
	MaxPollInterval   time.Duration
	UserAgent         string
	Proxy             string
	Headless          bool
	SqliteDbPath      string
	SqliteResultTable string
}

func LoadOptions(options *CheckOptions, scenario string, resultTable string) error {

	options.Scenario = scenario

	urlPtr := flag.String("url", "", "target application base URL")
	selectorPtr := flag.String("selector", "", "overlay marker selector")
	instancePtr := flag.Int("instance", -1, "zero-based overlay instance index")
	waitPtr := flag.Int("wait", 0, "wait budget in seconds")
	uaPtr := flag.String("ua", "", "user agent")
	proxyPtr := flag.String("proxy", "", "proxy_host:proxy_port")

	flag.Parse()

	cfg, err := LoadConfig(options)
	if err != nil {
		return err
	}

	applyConfig(options, cfg, scenario, resultTable)

	if *urlPtr != "" {
		options.TargetURL = *urlPtr
	}
	if *selectorPtr != "" {
		options.MarkerSelector = *selectorPtr
	}
	if *instancePtr >= 0 {
		options.InstanceIndex = *instancePtr
	}
	if *waitPtr > 0 {
		options.WaitBudget = time.Duration(*waitPtr) * time.Second
	}
	if *uaPtr != "" {
		options.UserAgent = *uaPtr
	}
	if *proxyPtr != "" {
		options.Proxy = *proxyPtr
	}

	return nil
}

func applyConfig(options *CheckOptions, cfg *ini.File, scenario string, resultTable string) {
	scenarioSection := scenario
	browserSection := "browser"
	waitSection := "wait"
	sqliteSection := "sqlite"

	options.TargetURL = cfg.Section(scenarioSection).Key("url").MustString(DefaultTargetURL)
	options.MarkerSelector = cfg.Section(scenarioSection).Key("selector").MustString(DefaultMarkerSelector)
	options.InstanceIndex = cfg.Section(scenarioSection).Key("instance").MustInt(0)

	options.UserAgent = cfg.Section(browserSection).Key("userAgent").String()
	options.Proxy = cfg.Section(browserSection).Key("proxy").String()
	options.Headless = cfg.Section(browserSection).Key("headless").MustBool(true)

	budget := cfg.Section(waitSection).Key("budgetSeconds").MustInt(8)
	options.WaitBudget = time.Duration(budget) * time.Second
	poll := cfg.Section(waitSection).Key("pollIntervalMs").MustInt(100)
	options.PollInterval = time.Duration(poll) * time.Millisecond
	maxPoll := cfg.Section(waitSection).Key("maxPollIntervalMs").MustInt(1000)
	options.MaxPollInterval = time.Duration(maxPoll) * time.Millisecond

	options.SqliteDbPath = cfg.Section(sqliteSection).Key("dbPath").String()

	options.SqliteResultTable = cfg.Section(scenarioSection).Key("resultTable").String()
	if options.SqliteResultTable == "" {
		options.SqliteResultTable = resultTable
	}
}

// A missing config.ini is not an error; every key has a default.
func LoadConfig(options *CheckOptions) (*ini.File, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, "config.ini")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ini.Empty(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func TempDir(_ *CheckOptions) (string, error) {
	dir, err := os.MkdirTemp("", "overlay-check")
	if err == nil {
		log.Printf("temp dir: %s", dir)
	}
	return dir, err
}

func DefaultOpts(options *CheckOptions, dir string) ([]chromedp.ExecAllocatorOption, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.UserDataDir(dir),
		chromedp.Flag("headless", options.Headless),
	)

	if options.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(options.UserAgent))
	}
	if options.Proxy != "" {
		opts = append(opts, chromedp.ProxyServer(fmt.Sprintf("http://%s", options.Proxy)))
	}

	return opts, nil
}

func RunWithTimeout(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return chromedp.Run(timeoutCtx, actions...)
}
