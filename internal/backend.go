package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/markusressel/lednice/internal/api"
	"github.com/markusressel/lednice/internal/configuration"
	"github.com/markusressel/lednice/internal/transport"
	"github.com/markusressel/lednice/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

func RunDaemon() {
	config := configuration.CurrentConfig

	if config.Pwm.File != nil && getProcessOwner() != "root" {
		ui.Warning("Writing to pwm files usually requires root permissions, consider running lednice as root")
	}

	objects, err := InitializeObjects(config, prometheus.DefaultRegisterer)
	if err != nil {
		ui.Fatal("Unable to initialize device: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if config.Transport.Enabled {
			// === Control transport
			listener, err := transport.Listen(config.Transport.Listen)
			if err != nil {
				ui.Fatal("Cannot listen on %s: %v", config.Transport.Listen, err)
			}
			server := transport.NewServer(objects.Handler, config.Transport.Timeout)

			g.Add(func() error {
				ui.Info("Accepting control requests on %s", config.Transport.Listen)
				return server.Serve(ctx, listener)
			}, func(err error) {
				_ = listener.Close()
				if err != nil {
					ui.Warning("Error stopping control transport: %v", err)
				} else {
					ui.Info("Control transport stopped.")
				}
			})
		}
	}
	{
		if config.Api.Enabled {
			// === REST api
			rest := api.CreateRestService(objects.Handler, objects.History, objects.Store.LedCount(), registererFor(config))

			g.Add(func() error {
				addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)
				ui.Info("Starting REST api on %s", addr)
				if err := rest.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer timeoutCancel()
				if err := rest.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api: %v", err)
				} else {
					ui.Info("REST api stopped.")
				}
			})
		}
	}
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: statisticsAddr(config.Statistics), Handler: mux}

			g.Add(func() error {
				ui.Info("Starting statistics server on %s", server.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping statistics server...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

const defaultStatisticsPort = 9000

func statisticsAddr(config configuration.StatisticsConfig) string {
	port := config.Port
	if !configuration.IsValidPort(port) {
		port = defaultStatisticsPort
	}
	return fmt.Sprintf(":%d", port)
}

// HTTP metrics of the REST api are only collected when they can be scraped
func registererFor(config configuration.Configuration) prometheus.Registerer {
	if config.Statistics.Enabled {
		return prometheus.DefaultRegisterer
	}
	return nil
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Warning("Error checking process owner: %v", err)
		return ""
	}
	return strings.TrimSpace(string(stdout))
}
