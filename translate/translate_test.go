package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Using(language.AmericanEnglish)

	assert.Equal("line 12 halted", From("line %d %v", 12, "halted"))
	assert.Equal("pc 0x1f", From("pc 0x%02x", 0x1f))
	assert.Equal("plain", From("plain"))
}
