package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	tint "github.com/lmittmann/tint"
	newsapi "github.com/mutablelogic/go-newsapi"
	version "github.com/mutablelogic/go-newsapi/pkg/version"
	gotenv "github.com/subosito/gotenv"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Debug    bool   `name:"debug" help:"Enable debug output"`
	ApiKey   string `name:"api-key" env:"NEWS_API_KEY" help:"News API key"`
	Endpoint string `name:"endpoint" help:"Override the service endpoint"`
	Config   string `name:"config" type:"path" help:"YAML configuration file"`
	Retries  int    `name:"retries" default:"0" help:"Retries for failed calls, with exponential backoff"`

	// Context
	ctx    context.Context
	client *newsapi.Client
}

type CLI struct {
	Globals

	Headlines HeadlinesCmd `cmd:"" help:"Get breaking news headlines"`
	Search    SearchCmd    `cmd:"" help:"Search the news archive"`
	Sources   SourcesCmd   `cmd:"" help:"List available publishers"`
	Version   VersionCmd   `cmd:"" help:"Print the version"`
}

type VersionCmd struct{}

type configFile struct {
	ApiKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Values from a .env file feed the env tags below
	gotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("News search command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Merge values from the configuration file
	if cli.Config != "" {
		config, err := readConfig(cli.Config)
		cmd.FatalIfErrorf(err)
		if cli.ApiKey == "" {
			cli.ApiKey = config.ApiKey
		}
		if cli.Endpoint == "" {
			cli.Endpoint = config.Endpoint
		}
	}

	// Logging
	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	// Create a client
	if cmd.Command() != "version" {
		opts := []newsapi.ClientOpt{newsapi.OptLogger(logger)}
		if cli.Endpoint != "" {
			opts = append(opts, newsapi.OptEndpoint(cli.Endpoint))
		}
		if cli.Retries > 0 {
			opts = append(opts, newsapi.OptRetry(newsapi.RetryExponential(time.Second), cli.Retries))
		}
		client, err := newsapi.New(cli.ApiKey, opts...)
		cmd.FatalIfErrorf(err)
		cli.Globals.client = client
	}

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*VersionCmd) Run(globals *Globals) error {
	_, err := os.Stdout.WriteString(version.String(execName()) + "\n")
	return err
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	name, err := os.Executable()
	if err != nil {
		return "news"
	}
	return filepath.Base(name)
}

func readConfig(path string) (*configFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var config configFile
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}
