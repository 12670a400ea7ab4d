package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormatDefaultsToJSON(t *testing.T) {
	r := &PklRenderer{}
	assert.Equal(t, "json", r.format())

	r = &PklRenderer{Format: "yaml"}
	assert.Equal(t, "yaml", r.format())
}
