// Command reserve fills in the contact/reservation form from flags and
// submits it, either against a running API or with the local simulation.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"bellavista/internal/contact"
	"bellavista/internal/contactform"

	"github.com/spf13/cobra"
)

const (
	modeSimulate = "simulate"
	modeRemote   = "remote"
)

type options struct {
	mode    string
	apiURL  string
	delay   time.Duration
	verbose bool
	input   contact.Input
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "reserve:", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	var partySize string

	cmd := &cobra.Command{
		Use:           "reserve",
		Short:         "Send a reservation request to Bella Vista",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input.PartySize = contact.PartySize(partySize)
			return runReserve(cmd.Context(), out, opts)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	f := cmd.Flags()
	f.StringVar(&opts.mode, "mode", modeRemote, "submission mode: remote or simulate")
	f.StringVar(&opts.apiURL, "api", "http://localhost:8080", "base URL of the Bella Vista API")
	f.DurationVar(&opts.delay, "delay", contactform.DefaultSimulatedDelay, "simulated network delay")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log submitter activity")
	f.StringVar(&opts.input.FirstName, "first", "", "first name")
	f.StringVar(&opts.input.LastName, "last", "", "last name")
	f.StringVar(&opts.input.Email, "email", "", "email address")
	f.StringVar(&opts.input.Phone, "phone", "", "phone number")
	f.StringVar(&opts.input.ReservationDate, "date", "", "preferred date (YYYY-MM-DD)")
	f.StringVar(&partySize, "party", "", "party size (1-10 or 10+)")
	f.StringVar(&opts.input.SpecialRequests, "requests", "", "special requests")

	return cmd
}
