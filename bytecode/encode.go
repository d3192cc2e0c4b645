package bytecode

import "bytes"

func writeByte(buf *bytes.Buffer, b byte) {
	buf.WriteByte(b)
}

func writeOperand(buf *bytes.Buffer, n uint16) {
	operand := EncodeOperand(n)
	buf.Write(operand[:])
}

func writeInstruction(buf *bytes.Buffer, in Instruction) {
	writeByte(buf, byte(in.Op))
	if in.Op.HasOperand() {
		writeOperand(buf, in.Operand)
	}
}

// Encode serializes one instruction: the tag byte alone, or the tag and
// the operand in big-endian order.
func Encode(in Instruction) []byte {
	var buf bytes.Buffer
	writeInstruction(&buf, in)
	return buf.Bytes()
}

// Assemble concatenates the encodings of ins. There is no header or
// framing.
func Assemble(ins ...Instruction) []byte {
	var buf bytes.Buffer
	for _, in := range ins {
		writeInstruction(&buf, in)
	}
	return buf.Bytes()
}

// EncodeOperand splits n into big-endian bytes.
func EncodeOperand(n uint16) [2]byte {
	return [2]byte{byte(n >> 8), byte(n)}
}

// DecodeOperand is the inverse of EncodeOperand.
func DecodeOperand(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
