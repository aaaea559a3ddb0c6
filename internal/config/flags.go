// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-password-cost bcrypt work factor
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var passwordCost int
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.IntVar(&passwordCost, "password-cost", 0, "bcrypt work factor")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			PasswordCost: passwordCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
