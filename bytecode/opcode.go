// Package bytecode defines the virtual machine instruction set and its
// byte encoding. Each instruction is one tag byte, followed by a big-endian
// 16-bit operand for the operand-bearing opcodes.
package bytecode

import "fmt"

type Opcode byte

// The tag values are shared with the virtual machine and must not change.
const (
	OpConstant          Opcode = 0x01
	OpPop               Opcode = 0x02
	OpAdd               Opcode = 0x03
	OpSubtract          Opcode = 0x04
	OpMultiply          Opcode = 0x05
	OpDivide            Opcode = 0x06
	OpPower             Opcode = 0x07
	OpJump              Opcode = 0x08
	OpJumpIfFalse       Opcode = 0x09
	OpPlus              Opcode = 0x0A
	OpMinus             Opcode = 0x0B
	OpNot               Opcode = 0x0C
	OpAnd               Opcode = 0x0D
	OpOr                Opcode = 0x0E
	OpEquals            Opcode = 0x0F
	OpNotEquals         Opcode = 0x1A
	OpGreaterThan       Opcode = 0x1B
	OpGreaterThanEquals Opcode = 0x1C
	OpLessThan          Opcode = 0x1D
	OpLessThanEquals    Opcode = 0x1E
	OpVarAssign         Opcode = 0x1F
	OpVarAccess         Opcode = 0x2A
	OpVarReassign       Opcode = 0x2B
	OpBlockStart        Opcode = 0x2C
	OpBlockEnd          Opcode = 0x2D
	OpCall              Opcode = 0x2E
	OpIndexArray        Opcode = 0x2F
)

var opcodeNames = map[Opcode]string{
	OpConstant:          "OpConstant",
	OpPop:               "OpPop",
	OpAdd:               "OpAdd",
	OpSubtract:          "OpSubtract",
	OpMultiply:          "OpMultiply",
	OpDivide:            "OpDivide",
	OpPower:             "OpPower",
	OpJump:              "OpJump",
	OpJumpIfFalse:       "OpJumpIfFalse",
	OpPlus:              "OpPlus",
	OpMinus:             "OpMinus",
	OpNot:               "OpNot",
	OpAnd:               "OpAnd",
	OpOr:                "OpOr",
	OpEquals:            "OpEquals",
	OpNotEquals:         "OpNotEquals",
	OpGreaterThan:       "OpGreaterThan",
	OpGreaterThanEquals: "OpGreaterThanEquals",
	OpLessThan:          "OpLessThan",
	OpLessThanEquals:    "OpLessThanEquals",
	OpVarAssign:         "OpVarAssign",
	OpVarAccess:         "OpVarAccess",
	OpVarReassign:       "OpVarReassign",
	OpBlockStart:        "OpBlockStart",
	OpBlockEnd:          "OpBlockEnd",
	OpCall:              "OpCall",
	OpIndexArray:        "OpIndexArray",
}

// Opcodes lists every opcode in tag order.
var Opcodes = []Opcode{
	OpConstant, OpPop, OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower,
	OpJump, OpJumpIfFalse, OpPlus, OpMinus, OpNot, OpAnd, OpOr, OpEquals,
	OpNotEquals, OpGreaterThan, OpGreaterThanEquals, OpLessThan,
	OpLessThanEquals, OpVarAssign, OpVarAccess, OpVarReassign,
	OpBlockStart, OpBlockEnd, OpCall, OpIndexArray,
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(0x%02X)", byte(op))
}

// Valid reports whether op is one of the defined tags.
func (op Opcode) Valid() bool {
	_, ok := opcodeNames[op]
	return ok
}

// HasOperand reports whether op is followed by a 16-bit operand.
func (op Opcode) HasOperand() bool {
	switch op {
	case OpConstant, OpVarAssign, OpVarAccess, OpVarReassign, OpJump, OpJumpIfFalse:
		return true
	}
	return false
}

// Size is the encoded length of an instruction with this opcode.
func (op Opcode) Size() int {
	if op.HasOperand() {
		return 3
	}
	return 1
}

// Instruction is one opcode with its operand. Operand is ignored for
// operand-free opcodes.
type Instruction struct {
	Op      Opcode
	Operand uint16
}

func (in Instruction) String() string {
	if in.Op.HasOperand() {
		return fmt.Sprintf("%s %d", in.Op, in.Operand)
	}
	return in.Op.String()
}
