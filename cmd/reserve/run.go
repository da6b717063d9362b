package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"bellavista/internal/contact"
	"bellavista/internal/contactform"

	"go.uber.org/zap"
)

func runReserve(ctx context.Context, out io.Writer, opts *options) error {
	log := zap.NewNop()
	if opts.verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = dev
		defer func() { _ = log.Sync() }()
	}

	var submitter contactform.Submitter
	switch opts.mode {
	case modeSimulate:
		submitter = contactform.NewSimulatedSubmitter(opts.delay, log)
	case modeRemote:
		submitter = contactform.NewRemoteSubmitter(opts.apiURL, nil)
	default:
		return fmt.Errorf("unknown mode %q (want %s or %s)", opts.mode, modeRemote, modeSimulate)
	}

	form := contactform.New(submitter, contactform.WithLogger(log))
	defer form.Close()
	form.SetFields(opts.input)

	err := form.Submit(ctx)
	if ve, ok := contact.AsValidationError(err); ok {
		printFieldErrors(out, ve.Fields)
		return err
	}

	if n := form.Notification(); n != nil {
		if n.Title != "" {
			fmt.Fprintln(out, n.Title)
		}
		fmt.Fprintln(out, n.Message)
	}
	if sub := form.LastSubmission(); sub != nil {
		fmt.Fprintf(out, "Reference: %s\n", sub.ID)
	}
	return err
}

func printFieldErrors(out io.Writer, fields contact.FieldErrors) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s: %s\n", name, fields[name])
	}
}
