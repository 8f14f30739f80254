package lookup

import "github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"

// Result is a complete structured address returned by a successful search.
type Result struct {
	Name   string
	Street string
	Zip    string
	City   string
}

// ApplyToCustomer writes the result into the customer record. The found name
// becomes the company name and the owner name fields are reset, since the
// looked-up business replaces whatever identity was typed before. Callers
// must only apply successful results; failures leave the record untouched by
// never producing a Result.
func (r Result) ApplyToCustomer(c *letter.Customer) {
	c.CompanyName = r.Name
	c.FirstName = ""
	c.LastName = ""
	c.Street = r.Street
	c.Zip = r.Zip
	c.City = r.City
}

// ApplyToDisposer writes the result into the disposer record and resets the
// country to the default, as the service only searches domestic addresses.
func (r Result) ApplyToDisposer(d *letter.Disposer) {
	d.Name = r.Name
	d.Street = r.Street
	d.Zip = r.Zip
	d.City = r.City
	d.Country = letter.DefaultCountry
}
