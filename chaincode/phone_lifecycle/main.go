package main

import (
	"context"

	"github.com/SilvStei/PhoneUseCase/internal/config"
	"github.com/SilvStei/PhoneUseCase/internal/ledger"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/sirupsen/logrus"
)

func newChaincode(cfg *config.Config) (shim.Chaincode, error) {
	if cfg.API == config.APIShim {
		return &ledger.Chaincode{}, nil
	}
	return contractapi.NewChaincode(newPhoneContract())
}

func run(ctx context.Context, cfg *config.Config) error {
	cc, err := newChaincode(cfg)
	if err != nil {
		return err
	}
	if !cfg.External() {
		log.L(ctx).Infof("Starting peer-launched chaincode (api=%s)", cfg.API)
		return shim.Start(cc)
	}

	server := &shim.ChaincodeServer{
		CCID:     cfg.CCID,
		Address:  cfg.ServerAddress,
		CC:       cc,
		TLSProps: shim.TLSProperties{Disabled: true},
	}
	tls, err := cfg.LoadTLS(ctx)
	if err != nil {
		return err
	}
	if tls != nil {
		server.TLSProps = shim.TLSProperties{
			Disabled:      false,
			Key:           tls.Key,
			Cert:          tls.Cert,
			ClientCACerts: tls.ClientCACerts,
		}
	}
	log.L(ctx).Infof("Starting chaincode server %s on %s (api=%s tls=%t)", cfg.CCID, cfg.ServerAddress, cfg.API, tls != nil)
	return server.Start()
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.L(ctx).Fatalf("Error loading chaincode configuration: %s", err)
	}
	log.SetLevel(cfg.LogLevel)
	if cfg.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if err := run(ctx, cfg); err != nil {
		log.L(ctx).Fatalf("Error starting phone lifecycle chaincode: %s", err)
	}
}
