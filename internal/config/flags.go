package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-otm-base-url base URL of the OTM installation
//	-otm-domain OTM domain segment
//	-otm-subdomain OTM subdomain qualifier
//	-otm-timeout outbound OTM request timeout
//	-static-dir frontend assets directory
//	-c/-config json file path with configs
//
// Credentials are deliberately not accepted as flags; they come from the
// environment or the JSON file.
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var otmBaseURL string
	var otmDomain string
	var otmSubdomain string
	var otmTimeout time.Duration
	var staticDir string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&otmBaseURL, "otm-base-url", "", "OTM base URL")
	flag.StringVar(&otmDomain, "otm-domain", "", "OTM domain")
	flag.StringVar(&otmSubdomain, "otm-subdomain", "", "OTM subdomain")
	flag.DurationVar(&otmTimeout, "otm-timeout", 0, "Outbound OTM request timeout")
	flag.StringVar(&staticDir, "static-dir", "", "Static frontend directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			StaticDir: staticDir,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		OTM: OTM{
			BaseURL:        otmBaseURL,
			Domain:         otmDomain,
			Subdomain:      otmSubdomain,
			RequestTimeout: otmTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
