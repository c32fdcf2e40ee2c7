package main

import (
	"fmt"
	"os"

	"github.com/kelmorin/bland-cli/pkg/bland"
	"github.com/kelmorin/bland-cli/pkg/config"
	"github.com/kelmorin/bland-cli/pkg/output"
	"github.com/kelmorin/bland-cli/pkg/session"
	"go.uber.org/zap"
)

// getOutputPrinter creates an output printer based on global flags
func getOutputPrinter() *output.Printer {
	format := output.FormatHuman
	if flagJSON {
		format = output.FormatJSON
	} else if flagRaw {
		format = output.FormatRaw
	}

	return output.New(format, flagQuiet, flagNoANSI)
}

// getClient creates an authenticated API client
func getClient() *bland.Client {
	opts := []bland.Option{
		bland.WithToken(session.GetToken()),
		bland.WithOrgID(session.GetOrgID()),
	}
	if cfg, err := config.Load(); err == nil {
		opts = append(opts, bland.WithDefaults(cfg.Defaults()))
	}
	if flagDebug {
		if logger, err := zap.NewDevelopment(); err == nil {
			opts = append(opts, bland.WithLogger(logger))
		}
	}
	return bland.New(config.GetAPIUrl(), opts...)
}

// finish handles the shared tail of every command: provider errors
// abort with exit code 1, JSON/raw modes dump the response body
// verbatim. Returns true when the caller should render human output.
func finish(out *output.Printer, r *bland.APIResponse) bool {
	if r.IsError() {
		out.APIError(r.Message)
		os.Exit(1)
	}
	if out.IsJSON() || out.IsRaw() {
		out.RawJSON(r.Raw)
		return false
	}
	return true
}

// fail prints a local error and exits.
func fail(out *output.Printer, err error) {
	out.Error(err)
	os.Exit(1)
}

// confirm prompts unless --yes was passed.
func confirm(prompt string) bool {
	if flagYes {
		return true
	}
	fmt.Printf("%s (y/N): ", prompt)
	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y"
}
