package cpu

import (
	"strings"
)

// Opcodes of the instruction set. 0x00-0x18 are single byte instructions,
// 0x19-0x3C take one operand byte.
const (
	OP_NOP = byte(0x00) // No operation
	OP_CLA = byte(0x01) // A := 0
	OP_CLC = byte(0x02) // C := 0
	OP_CLX = byte(0x03) // X := 0
	OP_CMC = byte(0x04) // C := !C
	OP_INC = byte(0x05) // A := A + 1
	OP_DEC = byte(0x06) // A := A - 1
	OP_INX = byte(0x07) // X := X + 1
	OP_DEX = byte(0x08) // X := X - 1
	OP_TAX = byte(0x09) // X := A
	OP_INI = byte(0x0A) // A := decimal read
	OP_INH = byte(0x0B) // A := hexadecimal read
	OP_INB = byte(0x0C) // A := binary read
	OP_INA = byte(0x0D) // A := character read
	OP_OTI = byte(0x0E) // write A, signed decimal
	OP_OTC = byte(0x0F) // write A, unsigned decimal
	OP_OTH = byte(0x10) // write A, hexadecimal
	OP_OTB = byte(0x11) // write A, binary
	OP_OTA = byte(0x12) // write A, character
	OP_PSH = byte(0x13) // SP := SP - 1; [SP] := A
	OP_POP = byte(0x14) // A := [SP]; SP := SP + 1
	OP_SHL = byte(0x15) // C, A := A << 1
	OP_SHR = byte(0x16) // C, A := A >> 1
	OP_RET = byte(0x17) // PC := [SP]; SP := SP + 1
	OP_HLT = byte(0x18) // Halt

	OP_LDA = byte(0x19) // A := [B]
	OP_LDX = byte(0x1A) // A := [X+B]
	OP_LDI = byte(0x1B) // A := B
	OP_LSP = byte(0x1C) // SP := [B]
	OP_LSI = byte(0x1D) // SP := B
	OP_STA = byte(0x1E) // [B] := A
	OP_STX = byte(0x1F) // [X+B] := A
	OP_ADD = byte(0x20) // A := A + [B]
	OP_ADX = byte(0x21) // A := A + [X+B]
	OP_ADI = byte(0x22) // A := A + B
	OP_ADC = byte(0x23) // A := A + [B] + C
	OP_ACX = byte(0x24) // A := A + [X+B] + C
	OP_ACI = byte(0x25) // A := A + B + C
	OP_SUB = byte(0x26) // A := A - [B]
	OP_SBX = byte(0x27) // A := A - [X+B]
	OP_SBI = byte(0x28) // A := A - B
	OP_SBC = byte(0x29) // A := A - [B] - C
	OP_SCX = byte(0x2A) // A := A - [X+B] - C
	OP_SCI = byte(0x2B) // A := A - B - C
	OP_CMP = byte(0x2C) // A - [B]
	OP_CPX = byte(0x2D) // A - [X+B]
	OP_CPI = byte(0x2E) // A - B
	OP_ANA = byte(0x2F) // A := A & [B]
	OP_ANX = byte(0x30) // A := A & [X+B]
	OP_ANI = byte(0x31) // A := A & B
	OP_ORA = byte(0x32) // A := A | [B]
	OP_ORX = byte(0x33) // A := A | [X+B]
	OP_ORI = byte(0x34) // A := A | B
	OP_BRN = byte(0x35) // PC := B
	OP_BZE = byte(0x36) // PC := B if Z
	OP_BNZ = byte(0x37) // PC := B if !Z
	OP_BPZ = byte(0x38) // PC := B if P or Z
	OP_BNG = byte(0x39) // PC := B if !P and !Z
	OP_BCC = byte(0x3A) // PC := B if !C
	OP_BCS = byte(0x3B) // PC := B if C
	OP_JSR = byte(0x3C) // SP := SP - 1; [SP] := PC; PC := B

	BAD_OPCODE = byte(0xFF) // Returned by LookupOpcode for unknown mnemonics.
)

// OperandKind describes how an instruction's operand byte is used.
type OperandKind int

const (
	OPERAND_NONE      = OperandKind(0) // no operand
	OPERAND_DIRECT    = OperandKind(1) // absolute data address
	OPERAND_INDEXED   = OperandKind(2) // data address relative to X
	OPERAND_IMMEDIATE = OperandKind(3) // literal value
	OPERAND_ADDRESS   = OperandKind(4) // code address
)

func (ok OperandKind) String() string {
	switch ok {
	case OPERAND_NONE:
		return "none"
	case OPERAND_DIRECT:
		return "direct"
	case OPERAND_INDEXED:
		return "indexed"
	case OPERAND_IMMEDIATE:
		return "immediate"
	case OPERAND_ADDRESS:
		return "address"
	}
	return "unknown"
}

// Info is the metadata for one opcode.
type Info struct {
	Opcode   byte        // Opcode byte.
	Size     int         // Instruction size in bytes; 0 for illegal opcodes.
	Taken    int         // Cycle cost, branch taken.
	NotTaken int         // Cycle cost, branch not taken.
	Mnemonic string      // Assembler mnemonic.
	Operand  OperandKind // Interpretation of the operand byte.
}

// Legal returns true if the entry describes an assigned opcode.
func (info Info) Legal() bool {
	return info.Size != 0
}

func (info Info) String() string {
	if !info.Legal() {
		return "???"
	}
	return info.Mnemonic
}

// op1 describes a single byte instruction.
func op1(opcode byte, mnemonic string) Info {
	return Info{Opcode: opcode, Size: 1, Taken: 1, NotTaken: 1, Mnemonic: mnemonic}
}

// op2 describes an instruction with an operand byte.
func op2(opcode byte, mnemonic string, operand OperandKind) Info {
	return Info{Opcode: opcode, Size: 2, Taken: 2, NotTaken: 2, Mnemonic: mnemonic, Operand: operand}
}

var _opcode_table = [256]Info{
	OP_NOP: op1(OP_NOP, "NOP"),
	OP_CLA: op1(OP_CLA, "CLA"),
	OP_CLC: op1(OP_CLC, "CLC"),
	OP_CLX: op1(OP_CLX, "CLX"),
	OP_CMC: op1(OP_CMC, "CMC"),
	OP_INC: op1(OP_INC, "INC"),
	OP_DEC: op1(OP_DEC, "DEC"),
	OP_INX: op1(OP_INX, "INX"),
	OP_DEX: op1(OP_DEX, "DEX"),
	OP_TAX: op1(OP_TAX, "TAX"),
	OP_INI: op1(OP_INI, "INI"),
	OP_INH: op1(OP_INH, "INH"),
	OP_INB: op1(OP_INB, "INB"),
	OP_INA: op1(OP_INA, "INA"),
	OP_OTI: op1(OP_OTI, "OTI"),
	OP_OTC: op1(OP_OTC, "OTC"),
	OP_OTH: op1(OP_OTH, "OTH"),
	OP_OTB: op1(OP_OTB, "OTB"),
	OP_OTA: op1(OP_OTA, "OTA"),
	OP_PSH: op1(OP_PSH, "PSH"),
	OP_POP: op1(OP_POP, "POP"),
	OP_SHL: op1(OP_SHL, "SHL"),
	OP_SHR: op1(OP_SHR, "SHR"),
	OP_RET: op1(OP_RET, "RET"),
	OP_HLT: op1(OP_HLT, "HLT"),

	OP_LDA: op2(OP_LDA, "LDA", OPERAND_DIRECT),
	OP_LDX: op2(OP_LDX, "LDX", OPERAND_INDEXED),
	OP_LDI: op2(OP_LDI, "LDI", OPERAND_IMMEDIATE),
	OP_LSP: op2(OP_LSP, "LSP", OPERAND_DIRECT),
	OP_LSI: op2(OP_LSI, "LSI", OPERAND_IMMEDIATE),
	OP_STA: op2(OP_STA, "STA", OPERAND_DIRECT),
	OP_STX: op2(OP_STX, "STX", OPERAND_INDEXED),
	OP_ADD: op2(OP_ADD, "ADD", OPERAND_DIRECT),
	OP_ADX: op2(OP_ADX, "ADX", OPERAND_INDEXED),
	OP_ADI: op2(OP_ADI, "ADI", OPERAND_IMMEDIATE),
	OP_ADC: op2(OP_ADC, "ADC", OPERAND_DIRECT),
	OP_ACX: op2(OP_ACX, "ACX", OPERAND_INDEXED),
	OP_ACI: op2(OP_ACI, "ACI", OPERAND_IMMEDIATE),
	OP_SUB: op2(OP_SUB, "SUB", OPERAND_DIRECT),
	OP_SBX: op2(OP_SBX, "SBX", OPERAND_INDEXED),
	OP_SBI: op2(OP_SBI, "SBI", OPERAND_IMMEDIATE),
	OP_SBC: op2(OP_SBC, "SBC", OPERAND_DIRECT),
	OP_SCX: op2(OP_SCX, "SCX", OPERAND_INDEXED),
	OP_SCI: op2(OP_SCI, "SCI", OPERAND_IMMEDIATE),
	OP_CMP: op2(OP_CMP, "CMP", OPERAND_DIRECT),
	OP_CPX: op2(OP_CPX, "CPX", OPERAND_INDEXED),
	OP_CPI: op2(OP_CPI, "CPI", OPERAND_IMMEDIATE),
	OP_ANA: op2(OP_ANA, "ANA", OPERAND_DIRECT),
	OP_ANX: op2(OP_ANX, "ANX", OPERAND_INDEXED),
	OP_ANI: op2(OP_ANI, "ANI", OPERAND_IMMEDIATE),
	OP_ORA: op2(OP_ORA, "ORA", OPERAND_DIRECT),
	OP_ORX: op2(OP_ORX, "ORX", OPERAND_INDEXED),
	OP_ORI: op2(OP_ORI, "ORI", OPERAND_IMMEDIATE),
	OP_BRN: op2(OP_BRN, "BRN", OPERAND_ADDRESS),
	OP_BZE: op2(OP_BZE, "BZE", OPERAND_ADDRESS),
	OP_BNZ: op2(OP_BNZ, "BNZ", OPERAND_ADDRESS),
	OP_BPZ: op2(OP_BPZ, "BPZ", OPERAND_ADDRESS),
	OP_BNG: op2(OP_BNG, "BNG", OPERAND_ADDRESS),
	OP_BCC: op2(OP_BCC, "BCC", OPERAND_ADDRESS),
	OP_BCS: op2(OP_BCS, "BCS", OPERAND_ADDRESS),
	OP_JSR: op2(OP_JSR, "JSR", OPERAND_ADDRESS),
}

// Lookup returns the metadata for an opcode byte, or ErrIllegalOpcode.
func Lookup(opcode byte) (info Info, err error) {
	info = _opcode_table[opcode]
	if !info.Legal() {
		err = ErrIllegalOpcode
	}
	return
}

// LookupOpcode returns the opcode for a mnemonic, ignoring case.
// BAD_OPCODE is returned for unknown mnemonics.
func LookupOpcode(mnemonic string) byte {
	for _, info := range _opcode_table {
		if info.Legal() && strings.EqualFold(info.Mnemonic, mnemonic) {
			return info.Opcode
		}
	}

	return BAD_OPCODE
}

// Opcodes returns the metadata of every legal opcode, in opcode order.
func Opcodes() (infos []Info) {
	for _, info := range _opcode_table {
		if info.Legal() {
			infos = append(infos, info)
		}
	}
	return
}
