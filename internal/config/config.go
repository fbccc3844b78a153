package config

import (
	"context"
	"os"

	"github.com/SilvStei/PhoneUseCase/internal/msgs"
	"github.com/caarlos0/env/v11"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const (
	APIContract = "contract"
	APIShim     = "shim"
)

type Config struct {
	// API selects the transaction surface: typed contract API transactions,
	// or the raw dispatch table.
	API string `env:"CHAINCODE_API" envDefault:"contract"`

	// ServerAddress switches the chaincode to external-service mode.
	ServerAddress string `env:"CHAINCODE_SERVER_ADDRESS"`
	CCID          string `env:"CHAINCODE_ID"`

	TLSDisabled  bool   `env:"CHAINCODE_TLS_DISABLED" envDefault:"true"`
	TLSKeyFile   string `env:"CHAINCODE_TLS_KEY"`
	TLSCertFile  string `env:"CHAINCODE_TLS_CERT"`
	ClientCAFile string `env:"CHAINCODE_CLIENT_CA_CERT"`

	LogLevel string `env:"CHAINCODE_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"CHAINCODE_LOG_JSON" envDefault:"false"`
}

// TLS holds the PEM material for the external-service server.
type TLS struct {
	Key           []byte
	Cert          []byte
	ClientCACerts []byte
}

// Load parses and validates the configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, i18n.NewError(ctx, msgs.MsgConfigParseFailed, err)
	}
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate(ctx context.Context) error {
	if c.API != APIContract && c.API != APIShim {
		return i18n.NewError(ctx, msgs.MsgConfigInvalidAPI, c.API)
	}
	if !c.External() {
		return nil
	}
	if c.CCID == "" {
		return i18n.NewError(ctx, msgs.MsgConfigMissingCCID)
	}
	if !c.TLSDisabled {
		if c.TLSKeyFile == "" {
			return i18n.NewError(ctx, msgs.MsgConfigMissingTLS, "CHAINCODE_TLS_KEY")
		}
		if c.TLSCertFile == "" {
			return i18n.NewError(ctx, msgs.MsgConfigMissingTLS, "CHAINCODE_TLS_CERT")
		}
	}
	return nil
}

// External reports whether the chaincode runs as an external service
// rather than being launched by the peer.
func (c *Config) External() bool {
	return c.ServerAddress != ""
}

// LoadTLS reads the configured key and certificates. It returns nil when TLS is disabled.
func (c *Config) LoadTLS(ctx context.Context) (*TLS, error) {
	if c.TLSDisabled {
		return nil, nil
	}
	var tls TLS
	var err error
	if tls.Key, err = readFile(ctx, c.TLSKeyFile); err != nil {
		return nil, err
	}
	if tls.Cert, err = readFile(ctx, c.TLSCertFile); err != nil {
		return nil, err
	}
	if c.ClientCAFile != "" {
		if tls.ClientCACerts, err = readFile(ctx, c.ClientCAFile); err != nil {
			return nil, err
		}
	}
	return &tls, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, i18n.NewError(ctx, msgs.MsgConfigReadFile, path, err)
	}
	return data, nil
}
