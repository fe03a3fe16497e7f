package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/anicoll/openwb-integration/internal/pkg/openwb"
)

// ValidateCommand performs a single fetch against the supplied host and
// reports unreachable and invalid-response outcomes distinctly, mirroring the
// setup-time validation an automation host would run.
func ValidateCommand(ctx *cli.Context) error {
	host := ctx.String("openwb-host")
	client := openwb.NewClient(host)

	snapshot, err := client.Fetch(ctx.Context)
	switch {
	case errors.Is(err, openwb.ErrUnreachable):
		return cli.Exit(fmt.Sprintf("cannot connect: no controller answered at %s", client.StatusURL()), 1)
	case errors.Is(err, openwb.ErrMalformedResponse):
		return cli.Exit(fmt.Sprintf("invalid response: %s did not return an openWB status payload", client.StatusURL()), 1)
	case err != nil:
		return err
	}

	title := deviceTitle(snapshot, ctx.String("device-name"), host)
	fmt.Fprintf(ctx.App.Writer, "connected to %q, %d readings available\n", title, len(snapshot))
	return nil
}
