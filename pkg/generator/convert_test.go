package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mucteba/podcover/pkg/generator"
)

func TestNoConverterOnEmptyPath(t *testing.T) {
	t.Setenv("PATH", "")

	assert.False(t, generator.HasConverter())
	err := generator.ToPNG("in.svg", "out.png")
	assert.ErrorIs(t, err, generator.ErrNoConverter)
}
