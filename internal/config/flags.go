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
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-c/-config json or yaml file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (e.g., "debug", "info")
//	-b upstream microservice base URL
//	-gateway-retries retries after a connection failure or timeout
//	-gateway-timeout per-attempt upstream timeout (e.g., "10s")
//	-gateway-retry-delay fixed delay between attempts (e.g., "100ms")
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var configPath string
	var requestTimeout time.Duration
	var logLevel string
	var baseURL string
	var gatewayTimeout time.Duration
	var gatewayRetries *int
	var gatewayRetryDelay *time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	flag.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (e.g., debug, info)")
	flag.StringVar(&baseURL, "b", "", "Upstream microservice base URL")
	flag.DurationVar(&gatewayTimeout, "gateway-timeout", 0, "Upstream per-attempt timeout (e.g., 10s)")
	flag.Func("gateway-retries", "Upstream retries after a connection failure", func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		gatewayRetries = &v
		return nil
	})
	flag.Func("gateway-retry-delay", "Upstream delay between attempts (e.g., 100ms)", func(s string) error {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		gatewayRetryDelay = &v
		return nil
	})

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Gateway: Gateway{
			BaseURL:    baseURL,
			Retries:    gatewayRetries,
			Timeout:    gatewayTimeout,
			RetryDelay: gatewayRetryDelay,
		},
		FilePath: configPath,
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
