// SPDX-License-Identifier: Apache-2.0

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
//	-a server listen address in format [host]:[port]
//	-s remote store base URL (client side)
//	-d data directory for client-side state
//	-dsn SQLite DSN for the server resource store
//	-t auth token
//	-c/-config json file path with configs
//	-sync-interval background sync interval (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var storeAddress string
	var dataDir string
	var databaseDSN string
	var authToken string
	var jsonConfigPath string
	var syncInterval time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&storeAddress, "s", "", "Remote store base URL")
	flag.StringVar(&dataDir, "d", "", "Client data directory")
	flag.StringVar(&databaseDSN, "dsn", "", "Server resource store DSN")
	flag.StringVar(&authToken, "t", "", "Auth token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AuthToken: authToken,
		},
		Storage: Storage{
			DataDir: dataDir,
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			StoreAddress:   storeAddress,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Interval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
