package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// sourceList collects -source flags; it accepts repeated flags and comma
// separated values.
type sourceList []string

func (s *sourceList) String() string {
	return strings.Join(*s, ",")
}

func (s *sourceList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-m manifest server base URL
//	-s source identifier (repeatable, or comma separated)
//	-d database DSN (SQLite path or postgres:// URL)
//	-r sync root directory
//	-c/-config json file path with configs
//	-request-timeout manifest server request timeout (e.g., "30s", "1m")
//	-sync-interval background sync period (e.g., "5m")
//	-parallelism number of entries applied concurrently
//	-once run one pass over every source and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var controlAddress NetAddress
	var sources sourceList
	var manifestServer string
	var databaseDSN string
	var rootDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var parallelism int
	var runOnce bool

	fs := flag.NewFlagSet("manifest-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&controlAddress, "a", "Control API address host:port")
	fs.Var(&sources, "s", "Source identifier (repeatable)")
	fs.StringVar(&manifestServer, "m", "", "Manifest server base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&rootDir, "r", "", "Sync root directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	fs.IntVar(&parallelism, "parallelism", 0, "Entries applied concurrently")
	fs.BoolVar(&runOnce, "once", false, "Run one pass and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Sources: sources,
			RunOnce: runOnce,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{RootDir: rootDir},
		},
		Server: Server{
			HTTPAddress: controlAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    manifestServer,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			Parallelism:  parallelism,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
