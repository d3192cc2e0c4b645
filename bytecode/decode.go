package bytecode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrTruncated     = errors.New("truncated instruction")
)

// Decode reads the instruction at offset and returns it with the offset of
// the next instruction.
func Decode(code []byte, offset int) (Instruction, int, error) {
	if offset < 0 || offset >= len(code) {
		return Instruction{}, offset, fmt.Errorf("offset %d: %w", offset, ErrTruncated)
	}
	op := Opcode(code[offset])
	if !op.Valid() {
		return Instruction{}, offset, fmt.Errorf("offset %d: %w 0x%02X", offset, ErrUnknownOpcode, byte(op))
	}
	if !op.HasOperand() {
		return Instruction{Op: op}, offset + 1, nil
	}
	if offset+3 > len(code) {
		return Instruction{}, offset, fmt.Errorf("offset %d: %s: %w", offset, op, ErrTruncated)
	}
	return Instruction{Op: op, Operand: DecodeOperand(code[offset+1], code[offset+2])}, offset + 3, nil
}

// Disassemble decodes a whole instruction stream.
func Disassemble(code []byte) ([]Instruction, error) {
	var ins []Instruction
	for offset := 0; offset < len(code); {
		in, next, err := Decode(code, offset)
		if err != nil {
			return nil, err
		}
		ins = append(ins, in)
		offset = next
	}
	return ins, nil
}

// Format renders code as one line per instruction: the offset, the opcode
// name and the operand if any.
func Format(code []byte) (string, error) {
	var b strings.Builder
	for offset := 0; offset < len(code); {
		in, next, err := Decode(code, offset)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%04d %s\n", offset, in)
		offset = next
	}
	return b.String(), nil
}
