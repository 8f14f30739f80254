package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/wizard"
)

func TestSession_CustomerGate(t *testing.T) {
	session := wizard.NewSession()

	assert.False(t, session.Advance(), "empty customer must not pass the first gate")
	assert.Equal(t, wizard.StageCustomer, session.Stage())

	// The gate only needs an identity; address fields do not matter.
	session.Customer.LastName = "Mustermann"
	require.True(t, session.Advance())
	assert.Equal(t, wizard.StageDisposer, session.Stage())
}

func TestSession_CustomerGateAcceptsCompanyAlone(t *testing.T) {
	session := wizard.NewSession()
	session.Customer.CompanyName = "Pizzeria Roma"
	session.Customer.FirstName = ""
	session.Customer.LastName = ""

	assert.True(t, session.Advance())
}

func TestSession_FirstNameAloneIsRejected(t *testing.T) {
	session := wizard.NewSession()
	session.Customer.FirstName = "Max"

	assert.False(t, session.Advance())
}

func TestSession_DisposerGate(t *testing.T) {
	session := wizard.NewSession()
	session.Customer.CompanyName = "Pizzeria Roma"
	require.True(t, session.Advance())

	session.Disposer.Name = "AWB Köln"
	session.Disposer.Street = "Industriestr. 1"
	assert.False(t, session.Advance(), "missing city must block the disposer stage")

	session.Disposer.City = "Köln"
	require.True(t, session.Advance())
	assert.Equal(t, wizard.StagePreview, session.Stage())
}

func TestSession_PreviewHasNoGate(t *testing.T) {
	session := completeToPreview(t)
	assert.True(t, session.Advance(), "preview is review only and always passable")
	assert.Equal(t, wizard.StageSignature, session.Stage())
}

func TestSession_SignatureGate(t *testing.T) {
	session := completeToPreview(t)
	require.True(t, session.Advance())

	assert.False(t, session.Advance(), "cannot finish without a signature")

	session.SetSignature("data:image/png;base64,aGFsbG8=")
	require.True(t, session.Advance())
	assert.Equal(t, wizard.StageDone, session.Stage())

	assert.False(t, session.Advance(), "done is terminal")
}

func TestSession_BackNeverClearsData(t *testing.T) {
	session := completeToPreview(t)

	require.True(t, session.Back())
	require.True(t, session.Back())
	assert.Equal(t, wizard.StageCustomer, session.Stage())
	assert.False(t, session.Back(), "cannot go back from the first stage")

	assert.Equal(t, "Pizzeria Roma", session.Customer.CompanyName)
	assert.Equal(t, "AWB Köln", session.Disposer.Name)
}

func TestSession_GoToOnlyReachedStages(t *testing.T) {
	session := completeToPreview(t)

	assert.False(t, session.GoTo(wizard.StageSignature), "signature stage was never reached")
	assert.True(t, session.GoTo(wizard.StageCustomer))
	assert.Equal(t, wizard.StageCustomer, session.Stage())
	assert.True(t, session.GoTo(wizard.StagePreview), "jumping forward to a reached stage is allowed")
}

func TestSession_SignatureOverwriteIsAtomic(t *testing.T) {
	session := wizard.NewSession()

	session.SetSignature("data:image/png;base64,one")
	session.SetSignature("")
	assert.Equal(t, "data:image/png;base64,one", session.Signature(), "empty capture must not erase a confirmed signature")

	session.SetSignature("data:image/png;base64,two")
	assert.Equal(t, "data:image/png;base64,two", session.Signature())
}

func TestSession_DocumentReflectsCurrentRecords(t *testing.T) {
	session := completeToPreview(t)

	doc := session.Document()
	assert.Contains(t, doc.SenderLine, "Pizzeria Roma")
	assert.Equal(t, "AWB Köln", doc.RecipientName)

	session.Customer.ContractNumber = "VT-1"
	doc = session.Document()
	assert.Equal(t, "Vertragsnummer: VT-1", doc.ContractNumberLine)
}

func TestStage_Names(t *testing.T) {
	want := []string{"Kundendaten", "Entsorger", "Vorschau", "Unterschrift", "Fertig"}
	for i, stage := range wizard.Stages() {
		assert.Equal(t, want[i], stage.String())
	}
}

func completeToPreview(t *testing.T) *wizard.Session {
	t.Helper()

	session := wizard.NewSession()
	session.Customer.CompanyName = "Pizzeria Roma"
	session.Customer.Street = "Hauptstr. 5"
	session.Customer.Zip = "50667"
	session.Customer.City = "Köln"
	session.Customer.SelectTerminationKind(letter.TerminationOrdentlich)
	require.True(t, session.Advance())

	session.Disposer.Name = "AWB Köln"
	session.Disposer.Street = "Industriestr. 1"
	session.Disposer.Zip = "50999"
	session.Disposer.City = "Köln"
	require.True(t, session.Advance())
	require.Equal(t, wizard.StagePreview, session.Stage())
	return session
}
