package ledger

import (
	"context"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// Chaincode exposes the dispatch table directly to the peer, without the
// reflection-based routing of the contract API.
type Chaincode struct{}

var _ shim.Chaincode = (*Chaincode)(nil)

func invocationContext(stub shim.ChaincodeStubInterface, function string) context.Context {
	ctx := log.WithLogField(context.Background(), "txid", stub.GetTxID())
	return log.WithLogField(ctx, "fn", function)
}

// Init initializes the registry indexes.
func (cc *Chaincode) Init(stub shim.ChaincodeStubInterface) peer.Response {
	ctx := invocationContext(stub, "instantiate")
	if err := New(stub).Instantiate(ctx); err != nil {
		log.L(ctx).Errorf("Init failed: %s", err)
		return shim.Error(err.Error())
	}
	return shim.Success(nil)
}

func (cc *Chaincode) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	function, args := stub.GetFunctionAndParameters()
	ctx := invocationContext(stub, function)
	payload, err := New(stub).Dispatch(ctx, function, args)
	if err != nil {
		log.L(ctx).Errorf("Invocation failed: %s", err)
		return shim.Error(err.Error())
	}
	return shim.Success(payload)
}
