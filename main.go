// Copyright (c) 2021 NETWAYS GmbH
//
// check_vmware_nsxt - Icinga check plugin for VMware NSX-T
//
// Supported Modes:
//
// * cluster-status - retrieves the overall NSX-T cluster status from the API
// * alarms - retrieve and display open alarms from the API
// * capacity-usage - retrieves and checks capacity indicators from the API
//
// General API Documentation: https://code.vmware.com/apis/1083/nsx-t
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/NETWAYS/check_vmware_nsxt/pkg/checkresult"
	"github.com/NETWAYS/check_vmware_nsxt/pkg/config"
	"github.com/NETWAYS/check_vmware_nsxt/pkg/processor"
	"github.com/NETWAYS/check_vmware_nsxt/pkg/retriever"
)

// excludeFlags collects the repeatable --exclude arguments
type excludeFlags []string

func (e *excludeFlags) String() string {
	return strings.Join(*e, ",")
}

func (e *excludeFlags) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	cfg := &config.Config{}
	var excludes excludeFlags

	flag.StringVar(&cfg.API, "api", "", "VMware NSX-T URL without any sub-path (e.g. https://vmware-nsx.local)")
	flag.StringVar(&cfg.API, "A", "", "VMware NSX-T URL (shorthand)")
	flag.StringVar(&cfg.Username, "username", "", "Username for Basic Auth")
	flag.StringVar(&cfg.Username, "u", "", "Username for Basic Auth (shorthand)")
	flag.StringVar(&cfg.Password, "password", "", "Password for Basic Auth")
	flag.StringVar(&cfg.Password, "p", "", "Password for Basic Auth (shorthand)")
	flag.StringVar(&cfg.Mode, "mode", "", "Check mode: "+strings.Join(config.Modes, "|"))
	flag.StringVar(&cfg.Mode, "m", "", "Check mode (shorthand)")
	flag.Var(&excludes, "exclude", "Exclude alarms or usages by regular expression (repeatable)")
	flag.IntVar(&cfg.MaxAge, "max-age", config.DefaultMaxAge, "Max age in minutes for capacity usage updates")
	flag.IntVar(&cfg.MaxAge, "M", config.DefaultMaxAge, "Max age in minutes (shorthand)")
	flag.BoolVar(&cfg.Insecure, "insecure", false, "Do not verify the TLS certificate. Be careful with this option, please")
	flag.BoolVar(&cfg.Version, "version", false, "Print version")
	flag.BoolVar(&cfg.Version, "V", false, "Print version (shorthand)")

	flag.Parse()
	if err := flag.Lookup("logtostderr").Value.Set("true"); err != nil {
		fmt.Println("Error setting default flag:", err)
		os.Exit(checkresult.Unknown)
	}

	cfg.Excludes = excludes
	cfg.LoadEnvironment()

	if cfg.Version {
		fmt.Println("check_vmware_nsxt version " + config.Version)
		glog.Flush()
		os.Exit(checkresult.OK)
	}

	state, output := runCheck(cfg)
	fmt.Println(output)
	glog.Flush()
	os.Exit(state)
}

// runCheck executes the selected mode and returns the state and the
// rendered plugin output. Any panic is mapped to UNKNOWN so the monitoring
// host never sees a bare stack trace as plugin output.
func runCheck(cfg *config.Config) (state int, output string) {
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("Unexpected error: %v", r)
			state = checkresult.Unknown
			output = fmt.Sprintf("[UNKNOWN] Unexpected error: %v", r)
		}
	}()

	if err := cfg.Validate(); err != nil {
		return checkresult.Unknown, "[UNKNOWN] " + err.Error()
	}

	excludes, err := processor.CompileExcludes(cfg.Excludes)
	if err != nil {
		return checkresult.Unknown, "[UNKNOWN] " + err.Error()
	}

	ret := retriever.NewRetriever(cfg.API, cfg.Username, cfg.Password, config.GetHTTPSClient(cfg.Insecure))
	ctx := context.Background()

	var check processor.Check
	switch cfg.Mode {
	case "cluster-status":
		document, err := ret.GetClusterStatus(ctx)
		if err != nil {
			return checkresult.Critical, "[CRITICAL] " + err.Error()
		}
		check = processor.NewClusterStatus(document)
	case "alarms":
		alarms, err := ret.GetAlarms(ctx)
		if err != nil {
			return checkresult.Critical, "[CRITICAL] " + err.Error()
		}
		check = processor.NewAlarms(alarms, excludes)
	case "capacity-usage":
		document, err := ret.GetCapacityUsage(ctx)
		if err != nil {
			return checkresult.Critical, "[CRITICAL] " + err.Error()
		}
		check = processor.NewCapacityUsage(document, cfg.MaxAge, excludes)
	default:
		return checkresult.Unknown, fmt.Sprintf("[UNKNOWN] unknown mode %s", cfg.Mode)
	}

	result := check.BuildResult()
	return result.Status(), result.Render()
}
