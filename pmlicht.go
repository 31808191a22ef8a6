package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lautenbacher.net/pmlicht/animation"
	"lautenbacher.net/pmlicht/config"
	"lautenbacher.net/pmlicht/ipc"
	"lautenbacher.net/pmlicht/logging"
	"lautenbacher.net/pmlicht/platform"
)

func main() {
	cfile := flag.String("config", config.CONFILE, "Path to the config file")
	realp := flag.Bool("real", false, "Set to true if program runs on the real hardware")
	flag.Parse()

	conf, err := config.ReadConfig(*cfile, *realp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}

	// On the TUI the terminal belongs to the simulation, so logs are
	// buffered until its log pane is up.
	if err := logging.Init(!conf.RealHW, conf.Logging.Level, conf.Logging.Format, conf.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error initialising logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(conf, *cfile); err != nil {
		slog.Error("Fatal", "error", err)
		logging.Close()
		os.Exit(1)
	}
	logging.Close()
}

func run(conf *config.Config, cfile string) error {
	startMode, err := animation.ParseMode(conf.Animation.StartMode)
	if err != nil {
		return err
	}

	rt := config.NewRuntime(conf)
	watcher, err := config.NewWatcher(cfile, conf.RealHW, rt)
	if err != nil {
		slog.Warn("Config hot-reload disabled", "error", err)
	} else {
		go watcher.Run()
		defer watcher.Close()
	}

	speed := ipc.NewSpeed()
	sched := animation.NewScheduler(startMode, conf.Animation.StartMirrored, rt.ModeDuration, nil)
	server, err := ipc.NewServer(conf.IPC.SocketPath, speed, sched.History)
	if err != nil {
		return err
	}
	go server.Serve()
	defer server.Close()

	ossignal := make(chan os.Signal, 1)
	signal.Notify(ossignal, os.Interrupt, syscall.SIGTERM)

	plt := platform.New(conf, ossignal)
	if err := plt.Start(); err != nil {
		return err
	}

	var dimmer *animation.NightDimmer
	if conf.NightDim.Enabled {
		dimmer = animation.NewNightDimmer(conf.NightDim.Latitude, conf.NightDim.Longitude, rt.NightDimFactor)
	}

	animator := animation.NewAnimator(
		conf.Display.LedsTotal,
		animation.WarmWhite(conf.Display.BigLeds),
		sched,
		plt,
		speed,
		rt.BaseDelay,
		dimmer,
	)

	// The render loop owns this goroutine until the strip fails; the
	// TUI's quit key and OS signals end the process from here.
	go func() {
		<-ossignal
		slog.Info("Shutting down...")
		plt.Stop()
		server.Close()
		logging.Close()
		os.Exit(0)
	}()

	err = animator.Run()
	plt.Stop()
	return err
}
