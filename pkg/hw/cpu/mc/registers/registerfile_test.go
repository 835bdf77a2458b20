package registers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFile_ParseRoundTrips(t *testing.T) {
	for _, count := range []int{1, 16, 32} {
		file := NewRegisterFile(count)

		for i := 0; i < count; i++ {
			register, err := file.Register(i)
			require.NoError(t, err)

			index, err := file.Parse(register.Name())
			require.NoError(t, err)
			assert.Equal(t, i, index)
		}
	}
}

func TestRegisterFile_ParseRejectsInvalidNames(t *testing.T) {
	for _, name := range []string{"", "x", "r1", "1", "xx1", "x1,", "x-1", "x+1", "x 1", "x1.0", "x32", "x100", "zero"} {
		t.Run(fmt.Sprintf("'%v'", name), func(t *testing.T) {
			_, err := IntegerRegisters.Parse(name)
			assert.ErrorIs(t, err, ErrInvalidRegister)
		})
	}
}

func TestRegisterFile_SmallerFileBoundsIndices(t *testing.T) {
	file := NewRegisterFile(16)

	index, err := file.Parse("x15")
	require.NoError(t, err)
	assert.Equal(t, 15, index)

	_, err = file.Parse("x16")
	assert.ErrorIs(t, err, ErrInvalidRegister)
}

func TestIntegerRegisters_ABINames(t *testing.T) {
	assert.Equal(t, 32, IntegerRegisters.TotalRegisters())

	zero, err := IntegerRegisters.Register(0)
	require.NoError(t, err)
	assert.Equal(t, "zero", zero.ABIName)

	ra, err := IntegerRegisters.Register(1)
	require.NoError(t, err)
	assert.Equal(t, "x1", ra.String())
	assert.Equal(t, "ra", ra.ABIName)
}
