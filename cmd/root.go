package cmd

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/liamg/ipsniff/scan"
	"github.com/liamg/ipsniff/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool
var timeoutMS int = 1000
var delayMS int = 50
var threads int = scan.DefaultWorkers
var startPort string
var versionRequested bool

func init() {
	rootCmd.Flags().BoolVarP(&versionRequested, "version", "", versionRequested, "Output version information and exit")
	rootCmd.Flags().BoolVarP(&debug, "verbose", "v", debug, "Enable verbose logging")
	rootCmd.Flags().IntVarP(&timeoutMS, "timeout-ms", "t", timeoutMS, "Connection timeout per port in MS")
	rootCmd.Flags().IntVarP(&delayMS, "delay-ms", "d", delayMS, "Delay between attempts of a single thread in MS")
	rootCmd.Flags().IntVarP(&threads, "threads", "j", threads, "Number of threads to scan with")
	rootCmd.Flags().StringVarP(&startPort, "ports", "p", startPort, "Start port, followed by the end port as a second argument e.g. -p 1 1024")
}

var rootCmd = &cobra.Command{
	Use:           "ipsniff <IP_ADDRESS> [-j THREADS] [-p START_PORT END_PORT]",
	Short:         "ipsniff is a TCP connect port scanner",
	Long:          `A multi-threaded TCP connect scanner which reports the open ports of a single host.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {

		if versionRequested {
			v := version.Version
			if v == "" {
				v = "development version"
			}
			fmt.Printf("ipsniff %s\n", v)
			return nil
		}

		if debug {
			log.SetLevel(log.DebugLevel)
		}

		cfg, err := buildConfig(args, threads, startPort, cmd.Flags().Changed("ports"))
		if err != nil {
			return err
		}
		cfg.Timeout = time.Millisecond * time.Duration(timeoutMS)
		cfg.Delay = time.Millisecond * time.Duration(delayMS)

		var scanner scan.Scanner = scan.NewConnectScanner(nil, func(uint16) {
			fmt.Print(".")
		})

		log.Debugf("Starting scan of %s ports %d-%d...", cfg.Target, cfg.StartPort, cfg.EndPort)

		result, err := scanner.Scan(cfg)
		if err != nil {
			return err
		}

		scanner.OutputResult(result)
		log.Debugf("Scan complete in %s.", result.Duration)
		return nil
	},
}

func Execute() {
	rootCmd.SetArgs(normaliseArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s problem parsing arguments: %s\n", os.Args[0], err)
		os.Exit(1)
	}
}

// normaliseArgs maps the single dash -help onto cobra's --help.
func normaliseArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if arg == "-help" {
			arg = "--help"
		}
		out[i] = arg
	}
	return out
}

// buildConfig turns the positional arguments and flag values into a validated
// scan config. When -p is given, its value is the start port and the end port
// is the positional argument following the address.
func buildConfig(args []string, threads int, start string, portsSet bool) (scan.Config, error) {

	if len(args) == 0 {
		return scan.Config{}, errors.New("not enough arguments")
	}

	maxArgs := 1
	if portsSet {
		maxArgs = 2
	}
	if len(args) > maxArgs {
		return scan.Config{}, errors.New("too many arguments")
	}

	ip := net.ParseIP(args[0])
	if ip == nil {
		return scan.Config{}, errors.New("invalid IP address")
	}

	if threads < 1 || threads > scan.MaxWorkers {
		return scan.Config{}, errors.New("failed to parse thread number")
	}

	first, last := 1, scan.MaxPort
	if portsSet {
		var err error
		if first, err = strconv.Atoi(start); err != nil || first < 0 {
			return scan.Config{}, errors.New("failed to parse start port number")
		}
		if len(args) < 2 {
			return scan.Config{}, errors.New("missing end port number argument")
		}
		if last, err = strconv.Atoi(args[1]); err != nil || last < 0 {
			return scan.Config{}, errors.New("failed to parse end port number")
		}
	}

	if first < 1 || first > last || last > scan.MaxPort {
		return scan.Config{}, fmt.Errorf("%w: %d-%d", scan.ErrInvalidPortRange, first, last)
	}

	cfg := scan.NewConfig(ip, uint16(first), uint16(last), threads)
	if err := cfg.Validate(); err != nil {
		return scan.Config{}, err
	}
	return cfg, nil
}
