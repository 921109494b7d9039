// Command vssinfo prints the shadow copy facts for the running host: the
// detected platform, the implementation assembly resolution outcome and,
// on request, whether the process has enough privilege to use VSS.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/cobra"

	vss "github.com/alphavss/go-vss"
)

var (
	verbose         bool
	checkPrivileges bool
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "vssinfo",
		Short: "Show VSS platform resolution for this host",
		// Failures are already reported on stdout or through the
		// logger; a second print from cobra would duplicate them.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVar(&checkPrivileges, "check-privileges", false, "load the provider and verify VSS privileges")

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})).With("component", "vssinfo")

	info, err := host.Info()
	if err != nil {
		log.Debug("host info unavailable", "error", err)
	} else {
		fmt.Printf("Host:      %s (%s %s, %s)\n",
			info.Hostname, info.Platform, info.PlatformVersion, info.KernelArch)
	}

	platform := vss.DetectPlatform()
	fmt.Printf("Detected:  %s / %s\n", platform.OS, platform.Arch)

	identity, err := vss.Resolve()
	if err != nil {
		var unsupported *vss.UnsupportedPlatformError
		if errors.As(err, &unsupported) {
			fmt.Printf("Variant:   unsupported (%s)\n", unsupported.Reason)
		} else {
			log.Error("resolution failed", "error", err)
		}
		return err
	}

	fmt.Printf("Variant:   %s\n", identity.ShortName)
	fmt.Printf("Assembly:  %s\n", identity.FullName())

	if !checkPrivileges {
		return nil
	}

	provider, err := vss.LoadImplementation()
	if err != nil {
		log.Error("loading provider failed", "error", err)
		return err
	}

	if err := provider.CheckPrivileges(); err != nil {
		log.Error("privilege check failed", "error", err)
		return err
	}

	fmt.Println("Privilege: ok")
	return nil
}
