package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	id := ParseName("eslap://acme/services/webapp/2.1")
	assert.Equal(t, Identity{Domain: "acme", Name: "webapp", Version: "2.1"}, id)
}

func TestParseNameShortURN(t *testing.T) {
	id := ParseName("eslap://acme/components/db")
	assert.Equal(t, Identity{Domain: "acme", Name: "db"}, id)
}

func TestGenerateURNRoundTrip(t *testing.T) {
	urn := GenerateURN(KindServices, "acme", "webapp", "2.1")
	assert.Equal(t, "eslap://acme/services/webapp/2.1", urn)
	assert.Equal(t, Identity{Domain: "acme", Name: "webapp", Version: "2.1"}, ParseName(urn))
}
