package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/lookup"
)

func TestResult_ApplyToCustomer(t *testing.T) {
	customer := letter.NewCustomer()
	customer.FirstName = "Max"
	customer.LastName = "Mustermann"
	customer.CustomerNumber = "KD-1"

	result := lookup.Result{Name: "Pizzeria Roma", Street: "Hauptstr. 5", Zip: "50667", City: "Köln"}
	result.ApplyToCustomer(&customer)

	assert.Equal(t, "Pizzeria Roma", customer.CompanyName)
	assert.Empty(t, customer.FirstName, "owner name is replaced by the looked-up business")
	assert.Empty(t, customer.LastName)
	assert.Equal(t, "Hauptstr. 5", customer.Street)
	assert.Equal(t, "50667", customer.Zip)
	assert.Equal(t, "Köln", customer.City)
	assert.Equal(t, "KD-1", customer.CustomerNumber, "unrelated fields stay untouched")
}

func TestResult_ApplyToDisposer(t *testing.T) {
	disposer := letter.NewDisposer()
	disposer.Country = "Schweiz"

	result := lookup.Result{Name: "AWB Köln", Street: "Industriestr. 1", Zip: "50999", City: "Köln"}
	result.ApplyToDisposer(&disposer)

	assert.Equal(t, "AWB Köln", disposer.Name)
	assert.Equal(t, letter.DefaultCountry, disposer.Country, "domestic search resets the country")
}
