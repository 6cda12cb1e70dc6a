package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/strafe/omath"
	"github.com/oomph-ac/strafe/scenario"
	"github.com/oomph-ac/strafe/settings"
	"github.com/pelletier/go-toml"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var CLI struct {
	Debug    bool   `help:"Whether to enable debug logging."`
	Settings string `help:"Settings file to load. The default settings are used when empty." type:"path"`

	Simulate struct {
		Scenario string `arg:"" name:"scenario" help:"Scenario file to play." type:"existingfile"`
		Every    int    `help:"Print every n-th tick." default:"1"`
	} `cmd:"" help:"Play a scenario file through the simulator and print every tick."`

	Serve struct {
		Bots     int           `help:"Number of simulated clients to drive the server with." default:"8"`
		Duration time.Duration `help:"Stop after this long. Zero runs until interrupted."`
	} `cmd:"" help:"Run the authoritative server loop."`

	Config struct {
		Write string `help:"Write the default settings to this file instead of standard output." type:"path"`
	} `cmd:"" help:"Print the default settings."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("strafe"),
		kong.Description("deterministic player movement simulation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	if CLI.Debug {
		lg.Level = logrus.DebugLevel
	}

	var err error
	switch ctx.Command() {
	case "simulate <scenario>":
		err = simulateCommand(lg)
	case "serve":
		err = serveCommand(lg)
	case "config":
		err = configCommand()
	}
	if err != nil {
		writeError(err)
	}
}

func loadSettings(lg *logrus.Logger) (settings.Settings, error) {
	if CLI.Settings == "" {
		return settings.DefaultSettings(), nil
	}
	s, err := settings.Load(CLI.Settings)
	if err != nil {
		return s, err
	}
	if !CLI.Debug && s.Server.LogLevel != "" {
		level, err := logrus.ParseLevel(s.Server.LogLevel)
		if err != nil {
			return s, fmt.Errorf("log level: %w", err)
		}
		lg.Level = level
	}
	return s, nil
}

func simulateCommand(lg *logrus.Logger) error {
	s, err := loadSettings(lg)
	if err != nil {
		return err
	}
	opts, err := s.SimulationOptions()
	if err != nil {
		return err
	}
	if CLI.Debug {
		opts.Debugf = lg.Debugf
	}

	sc, err := scenario.Load(CLI.Simulate.Scenario)
	if err != nil {
		return err
	}
	results, err := sc.Run(opts)
	if err != nil {
		return err
	}

	lg.Infof("playing %q (%d ticks)", sc.Name, len(results))
	every := max(CLI.Simulate.Every, 1)
	for i, res := range results {
		if i%every != 0 && i != len(results)-1 {
			continue
		}
		fmt.Printf("%5d pos=%v vel=%v ground=%v speed=%.4f sum=%016x\n",
			i,
			omath.RoundVec(res.Position, 4),
			omath.RoundVec(res.Velocity, 4),
			res.OnGround,
			omath.NewVec3(res.Velocity.X, 0, res.Velocity.Z).Len(),
			res.Checksum,
		)
	}
	return nil
}

func serveCommand(lg *logrus.Logger) error {
	s, err := loadSettings(lg)
	if err != nil {
		return err
	}

	if s.Server.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: s.Server.SentryDSN}); err != nil {
			return fmt.Errorf("sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if s.Server.StatsviewAddr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(s.Server.StatsviewAddr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	reg := prometheus.NewRegistry()
	if s.Server.MetricsAddr != "" {
		go func() {
			lg.Infof("metrics available at %s/metrics", s.Server.MetricsAddr)
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(s.Server.MetricsAddr, mux); err != nil {
				lg.Errorf("metrics server: %v", err)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if CLI.Serve.Duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, CLI.Serve.Duration)
		defer cancel()
	}

	err = runBots(ctx, lg, s, reg, CLI.Serve.Bots)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func configCommand() error {
	if CLI.Config.Write != "" {
		return settings.SaveDefault(CLI.Config.Write)
	}
	data, err := toml.Marshal(settings.DefaultSettings())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
