package msgs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const phonePrefix = "PH01"

var registered sync.Once
var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registered.Do(func() {
		i18n.RegisterPrefix(phonePrefix, "Phone Lifecycle Chaincode")
	})
	if !strings.HasPrefix(key, phonePrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", phonePrefix, key))
	}
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

var (
	// Invocation
	MsgUnknownFunction    = ffe("PH010000", "Unknown function: %s")
	MsgWrongArgumentCount = ffe("PH010001", "Function '%s' expects %d arguments, received %d")
	MsgParameterRequired  = ffe("PH010002", "Parameter '%s' is required")
	MsgInvalidPrice       = ffe("PH010003", "Invalid price '%v': must be a non-negative number")
	MsgUnknownRole        = ffe("PH010004", "Unknown participant role: %s")
	MsgResultMarshalError = ffe("PH010005", "Failed to serialize result of '%s': %s")

	// World state
	MsgStateReadFailed   = ffe("PH010100", "Failed to read '%s' from world state: %s")
	MsgStateWriteFailed  = ffe("PH010101", "Failed to write '%s' to world state: %s")
	MsgStateDeleteFailed = ffe("PH010102", "Failed to delete '%s' from world state: %s")
	MsgRecordInvalid     = ffe("PH010103", "Record stored under '%s' is invalid: %s")
	MsgEventFailed       = ffe("PH010104", "Failed to set event '%s': %s")

	// Registry
	MsgParticipantDuplicate = ffe("PH010200", "Participant %s already exists")
	MsgIndexNotInitialized  = ffe("PH010201", "Registry index '%s' has not been initialized")
	MsgParticipantNotFound  = ffe("PH010202", "Participant %s does not exist")
	MsgManufacturerNotFound = ffe("PH010203", "Manufacturer %s does not exist")
	MsgRetailerNotFound     = ffe("PH010204", "Retailer %s does not exist")
	MsgCarrierNotFound      = ffe("PH010205", "Carrier %s does not exist")
	MsgWrongParticipantType = ffe("PH010206", "Participant %s is a %s, expected a %s")

	// Assets and lifecycle
	MsgItemAlreadyExists = ffe("PH010300", "The item %s already exists")
	MsgItemNotFound      = ffe("PH010301", "The item %s does not exist")
	MsgNotAPhone         = ffe("PH010302", "The item %s is not a phone")
	MsgInvalidTransition = ffe("PH010303", "Cannot %s phone %s in status %s (requires %s)")
	MsgPhoneRetired      = ffe("PH010304", "Phone %s is %s and can no longer be updated")

	// Process
	MsgConfigParseFailed = ffe("PH010400", "Failed to parse chaincode configuration: %s")
	MsgConfigInvalidAPI  = ffe("PH010401", "Invalid CHAINCODE_API '%s' (expected 'contract' or 'shim')")
	MsgConfigMissingCCID = ffe("PH010402", "CHAINCODE_ID is required when CHAINCODE_SERVER_ADDRESS is set")
	MsgConfigMissingTLS  = ffe("PH010403", "TLS is enabled but '%s' is not set")
	MsgConfigReadFile    = ffe("PH010404", "Failed to read '%s': %s")
)
