package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	paho_mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gosimple/slug"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/anicoll/openwb-integration/internal/pkg/config"
	"github.com/anicoll/openwb-integration/internal/pkg/contxt"
	"github.com/anicoll/openwb-integration/internal/pkg/model"
	"github.com/anicoll/openwb-integration/internal/pkg/mqtt"
	"github.com/anicoll/openwb-integration/internal/pkg/openwb"
	"github.com/anicoll/openwb-integration/internal/pkg/publisher"
	"github.com/anicoll/openwb-integration/internal/pkg/registry"
	"github.com/anicoll/openwb-integration/internal/pkg/server"
)

var errConnectionLost = errors.New("mqtt connection lost")

// BridgeCommand is the main entry point for the bridge. It layers flag values
// over environment-derived config and starts all services.
func BridgeCommand(ctx *cli.Context) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	cfg.OpenWBCfg.Host = ctx.String("openwb-host")
	if cfg.OpenWBCfg.Host == "" {
		return cli.Exit("openwb-host is required", 1)
	}
	cfg.OpenWBCfg.DeviceName = ctx.String("device-name")
	cfg.OpenWBCfg.PollInterval = ctx.Duration("poll-interval")
	cfg.HTTPAddr = ctx.String("http-addr")
	cfg.LogLevel = ctx.String("log-level")

	return run(ctx.Context, cfg)
}

func run(ctx context.Context, cfg *config.Config) error {
	errorChan := make(chan error, 1000)
	var err error

	eg, ctx := errgroup.WithContext(ctx)
	logCfg := zap.NewProductionConfig()

	logCfg.Level, err = zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logCfg.OutputPaths = []string{"stdout"}
	logCfg.ErrorOutputPaths = []string{"stdout"}
	logCfg.Sampling = nil
	logger := zap.Must(logCfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)))
	defer func() {
		_ = logger.Sync() // flushes buffer, if any.
	}()
	zap.ReplaceGlobals(logger)

	client := openwb.NewClient(cfg.OpenWBCfg.Host)
	poller := openwb.NewPoller(client, cfg.OpenWBCfg.PollInterval)
	reg := registry.New()

	device := &model.Device{
		ID:               deviceID(cfg.OpenWBCfg.Host),
		Name:             deviceTitle(nil, cfg.OpenWBCfg.DeviceName, cfg.OpenWBCfg.Host),
		ConfigurationURL: client.BaseURL(),
	}

	var mqttSvc *mqtt.Service
	if cfg.MqttCfg.Host != "" {
		opts := paho_mqtt.NewClientOptions()
		opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.MqttCfg.Host, cfg.MqttCfg.Port))
		opts.SetUsername(cfg.MqttCfg.Username)
		opts.SetPassword(cfg.MqttCfg.Password)
		opts.SetClientID("openwb-bridge-" + device.ID)
		opts.SetWill(fmt.Sprintf("openwb/%s/availability", device.ID), "offline", 1, true)
		opts.OnConnectionLost = func(_ paho_mqtt.Client, err error) {
			errorChan <- fmt.Errorf("%w: %v", errConnectionLost, err)
		}

		mqttSvc = mqtt.New(paho_mqtt.NewClient(opts), device)
		if err := mqttSvc.Connect(); err != nil {
			return err
		}
		defer mqttSvc.Disconnect()

		if err := publisher.RegisterPublisher("mqtt", mqttSvc); err != nil {
			return err
		}
	} else {
		logger.Warn("no mqtt broker configured, serving local api only")
	}

	poller.Subscribe(func(snapshot model.Snapshot, ok bool) {
		if mqttSvc != nil {
			if err := mqttSvc.SetAvailability(ok); err != nil {
				errorChan <- err
			}
		}
		if !ok {
			return
		}
		newKeys := reg.Observe(snapshot)
		if len(newKeys) > 0 {
			if err := publisher.RegisterReadings(device, reg.StatusesFor(newKeys)); err != nil {
				errorChan <- err
			}
		}
		if err := publisher.PublishReadings(contxt.NewContext(time.Second*5), device, reg.Statuses()); err != nil {
			errorChan <- err
		}
	})

	eg.Go(func() error {
		return poller.Run(ctx)
	})

	eg.Go(func() error {
		srv := &http.Server{
			Handler:      server.New(device, poller, reg),
			Addr:         cfg.HTTPAddr,
			WriteTimeout: 15 * time.Second,
			ReadTimeout:  15 * time.Second,
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		// handle any async errors from services
		for {
			select {
			case err := <-errorChan:
				if errors.Is(err, errConnectionLost) {
					logger.Error("mqtt connection lost", zap.Error(err))
					return err
				}
				logger.Error("async error", zap.Error(err))
			case <-ctx.Done():
				logger.Info("context done")
				return ctx.Err()
			}
		}
	})

	return eg.Wait()
}

// deviceID derives a stable identifier for MQTT topics and unique ids from
// the configured host.
func deviceID(host string) string {
	base := openwb.BaseURL(host)
	base = strings.TrimPrefix(base, "http://")
	base = strings.TrimPrefix(base, "https://")
	return "openwb_" + strings.ReplaceAll(slug.Make(base), "-", "_")
}

// deviceTitle picks the presentation name: the user-supplied name, then the
// controller's reported systemName, then a host-derived fallback.
func deviceTitle(snapshot model.Snapshot, name, host string) string {
	if name != "" {
		return name
	}
	if sys, ok := snapshot["systemName"].(string); ok && sys != "" {
		return sys
	}
	return "openWB " + strings.TrimRight(strings.TrimSpace(host), "/")
}
