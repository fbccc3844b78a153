package ledger

// Record discriminators. Phones and participants share the world-state key space.
const (
	docTypePhone       = "phone"
	docTypeParticipant = "participant"
)

type Role string

const (
	RoleManufacturer Role = "Manufacturer"
	RoleRetailer     Role = "Retailer"
	RoleCarrier      Role = "Carrier"
)

// Roles lists the participant roles in registry order.
var Roles = []Role{RoleManufacturer, RoleRetailer, RoleCarrier}

// IndexKey is the well-known world-state key holding the ids of every
// participant registered with the role.
func (r Role) IndexKey() string {
	return string(r) + "s"
}

func (r Role) Valid() bool {
	switch r {
	case RoleManufacturer, RoleRetailer, RoleCarrier:
		return true
	}
	return false
}

type Participant struct {
	DocType     string   `json:"docType"`
	ID          string   `json:"id"`
	CompanyName string   `json:"companyName"`
	Role        Role     `json:"role"`
	Devices     []string `json:"devices"`
}

// Status codes, in lifecycle order.
const (
	StatusCreated = iota + 1
	StatusShipped
	StatusDelivered
	StatusSold
	StatusReturned
)

var statusText = map[int]string{
	StatusCreated:   "Created",
	StatusShipped:   "Shipped",
	StatusDelivered: "Delivered",
	StatusSold:      "Sold",
	StatusReturned:  "Returned",
}

type Status struct {
	Code int    `json:"code"`
	Text string `json:"text"`
}

func NewStatus(code int) Status {
	return Status{Code: code, Text: statusText[code]}
}

func (s Status) String() string {
	if s.Text != "" {
		return s.Text
	}
	return "Unknown"
}

type Phone struct {
	DocType      string  `json:"docType"`
	ID           string  `json:"id"`
	Status       Status  `json:"status"`
	Price        float64 `json:"price"`
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model,omitempty"    metadata:",optional"`
	Retailer     string  `json:"retailer,omitempty" metadata:",optional"`
	Carrier      string  `json:"carrier,omitempty"  metadata:",optional"`
	Customer     string  `json:"customer,omitempty" metadata:",optional"`
}

// LifecycleEvent is the payload of the PhoneLifecycle chaincode event.
type LifecycleEvent struct {
	PhoneID   string `json:"phoneId"`
	Operation string `json:"operation"`
	Status    Status `json:"status"`
}

const lifecycleEventName = "PhoneLifecycle"
