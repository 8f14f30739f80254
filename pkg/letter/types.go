package letter

// DefaultCountry is the country assumed for recipients. Renderers omit the
// country line when the disposer's country equals it.
const DefaultCountry = "Deutschland"

// TerminationKind enumerates the supported termination modes.
type TerminationKind string

const (
	TerminationOrdentlich       TerminationKind = "ordentlich"
	TerminationAusserordentlich TerminationKind = "ausserordentlich"
	TerminationFristlos         TerminationKind = "fristlos"
)

// Label returns the wording used in the letter body. Unknown kinds fall back
// to the generic label so a letter renders for any stored value.
func (k TerminationKind) Label() string {
	switch k {
	case TerminationOrdentlich:
		return "ordentliche Kündigung"
	case TerminationAusserordentlich:
		return "außerordentliche Kündigung"
	case TerminationFristlos:
		return "fristlose Kündigung"
	default:
		return "Kündigung"
	}
}

// Customer is the party requesting the termination. The wizard session owns
// the record exclusively for the duration of a run.
type Customer struct {
	CompanyName string `json:"companyName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`

	Street string `json:"street"`
	Zip    string `json:"zip"`
	City   string `json:"city"`

	CustomerNumber string `json:"customerNumber"`
	ContractNumber string `json:"contractNumber"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`

	// TerminationDate is an opaque label inserted verbatim into the
	// termination clause. It is never parsed and is ignored while
	// TerminationImmediate is set.
	TerminationDate      string          `json:"terminationDate"`
	TerminationKind      TerminationKind `json:"terminationType"`
	TerminationImmediate bool            `json:"terminationImmediate"`
}

// NewCustomer returns an empty customer record with the default termination
// kind selected.
func NewCustomer() Customer {
	return Customer{TerminationKind: TerminationOrdentlich}
}

// SelectTerminationKind records the chosen kind. Choosing fristlos also
// switches the record to immediate termination; the coupling is one way and
// never reverts on a later kind change.
func (c *Customer) SelectTerminationKind(kind TerminationKind) {
	c.TerminationKind = kind
	if kind == TerminationFristlos {
		c.TerminationImmediate = true
	}
}

// HasIdentity reports whether the record names a sender: a company name or a
// last name is enough.
func (c Customer) HasIdentity() bool {
	return c.CompanyName != "" || c.LastName != ""
}

// HasAddress reports whether street, zip and city are all filled in.
func (c Customer) HasAddress() bool {
	return c.Street != "" && c.Zip != "" && c.City != ""
}

// Disposer is the waste-management provider being notified.
type Disposer struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// NewDisposer returns an empty disposer record with the default country.
func NewDisposer() Disposer {
	return Disposer{Country: DefaultCountry}
}

// Complete reports whether the record is ready for the letter: name, street
// and city must be present. Zip is encouraged but not gated, matching the
// form behaviour.
func (d Disposer) Complete() bool {
	return d.Name != "" && d.Street != "" && d.City != ""
}
