package nodes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/aretw0/lattice/pkg/expr"
	"github.com/aretw0/lattice/pkg/expr/memory"
	"github.com/aretw0/lattice/pkg/nodes"
)

func TestTimeSlots(t *testing.T) {
	defs := nodes.NewTime().Slots()
	require.Len(t, defs, 2)
	assert.Equal(t, "time", defs[0].Name)
	assert.Equal(t, "delta_time", defs[1].Name)
	for _, def := range defs {
		assert.True(t, def.IsOutput())
		assert.True(t, def.ValueType.Equals(cty.Number))
	}
}

func TestTimeEval(t *testing.T) {
	node := nodes.NewTime()
	b := memory.New()

	three, err := b.Lit(cty.NumberIntVal(3))
	require.NoError(t, err)
	_, err = node.Eval(b, []expr.Handle{three})
	assert.ErrorIs(t, err, expr.ErrEval)

	outputs, err := node.Eval(b, nil)
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "builtin(time)", b.Describe(outputs[0]))
	assert.Equal(t, "builtin(delta_time)", b.Describe(outputs[1]))
}
