package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales("en-US")

	assert.Equal("illegal instruction", From("illegal instruction"))
	assert.Equal("halt at blt", From("halt at %v", "blt"))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	SetLocales()

	buf := &bytes.Buffer{}
	n, err := Fprintf(buf, "register r0 output is: %d\n", uint32(8))
	assert.NoError(err)
	assert.Equal(buf.Len(), n)
	assert.Equal("register r0 output is: 8\n", buf.String())
}
