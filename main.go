package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/anicoll/openwb-integration/cmd"
)

func main() {
	app := &cli.App{
		Name:   "openwb-bridge",
		Usage:  "bridge for openWB charging controllers",
		Action: cmd.BridgeCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "openwb-host",
				EnvVars: []string{"OPENWB_HOST"},
				Usage:   "host or base URL of the openWB controller, e.g. 192.168.1.50 or https://wb.local",
			},
			&cli.StringFlag{
				Name:    "device-name",
				EnvVars: []string{"OPENWB_NAME"},
				Usage:   "friendly device name used for presentation",
				Value:   "",
			},
			&cli.DurationFlag{
				Name:    "poll-interval",
				EnvVars: []string{"POLL_INTERVAL"},
				Value:   30 * time.Second,
			},
			&cli.StringFlag{
				Name:    "http-addr",
				EnvVars: []string{"HTTP_ADDR"},
				Value:   "0.0.0.0:8000",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "INFO",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "validate",
				Usage:  "attempt a single fetch against the configured host and report the outcome",
				Action: cmd.ValidateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "openwb-host",
						EnvVars:  []string{"OPENWB_HOST"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "device-name",
						EnvVars: []string{"OPENWB_NAME"},
						Value:   "",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
