package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTable(t *testing.T) {
	assert := assert.New(t)

	infos := Opcodes()
	assert.Len(infos, 0x3d)

	for n, info := range infos {
		assert.Equal(byte(n), info.Opcode)
		assert.Equal(info.Size, info.Taken, info.Mnemonic)
		assert.Equal(info.Taken, info.NotTaken, info.Mnemonic)
		if info.Opcode <= OP_HLT {
			assert.Equal(1, info.Size, info.Mnemonic)
			assert.Equal(OPERAND_NONE, info.Operand, info.Mnemonic)
		} else {
			assert.Equal(2, info.Size, info.Mnemonic)
			assert.NotEqual(OPERAND_NONE, info.Operand, info.Mnemonic)
		}
	}
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	info, err := Lookup(OP_LDX)
	assert.NoError(err)
	assert.Equal(Info{Opcode: OP_LDX, Size: 2, Taken: 2, NotTaken: 2, Mnemonic: "LDX", Operand: OPERAND_INDEXED}, info)

	for op := 0x3d; op < 0x100; op++ {
		info, err = Lookup(byte(op))
		assert.ErrorIs(err, ErrIllegalOpcode)
		assert.False(info.Legal())
		assert.Equal("???", info.String())
	}
}

func TestLookupOpcode(t *testing.T) {
	assert := assert.New(t)

	for _, info := range Opcodes() {
		assert.Equal(info.Opcode, LookupOpcode(info.Mnemonic))
		assert.Equal(info.Opcode, LookupOpcode(strings.ToLower(info.Mnemonic)))
	}

	assert.Equal(BAD_OPCODE, LookupOpcode("XYZ"))
	assert.Equal(BAD_OPCODE, LookupOpcode(""))
	assert.Equal(BAD_OPCODE, LookupOpcode("???"))
}

func TestErrOpcode(t *testing.T) {
	assert := assert.New(t)

	assert.Contains(ErrOpcode(OP_HLT).Error(), "HLT")
	assert.Contains(ErrOpcode(0xee).Error(), "???")
	assert.ErrorIs(ErrOpcode(1), ErrOpcode(2))
}
