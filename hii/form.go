package hii

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/hiikit/internal/buf"
	"github.com/joshuapare/hiikit/internal/format"
)

// Data returns the raw IFR op-code bytes that make up the form body.
func (f FormPackage) Data() []byte { return f.Body() }

// OpCodes returns a cursor over the IFR records of the form body.
func (f FormPackage) OpCodes() *OpCodeIterator {
	return &OpCodeIterator{data: f.Body(), base: format.PackageHeaderSize}
}

// CountOpCodes walks the form body and returns the number of records.
func (f FormPackage) CountOpCodes() (int, error) {
	n := 0
	it := f.OpCodes()
	for {
		_, err := it.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}

// OpCodeStats summarizes a form body by op-code class.
type OpCodeStats struct {
	Statements  int
	Expressions int
	Unknown     int
	Scopes      int // records that open a scope
}

// Total returns the number of records counted.
func (s OpCodeStats) Total() int { return s.Statements + s.Expressions + s.Unknown }

// CountOpCodeClasses walks the form body and tallies records per class.
// Unknown op-codes are counted separately and never classified.
func (f FormPackage) CountOpCodeClasses() (OpCodeStats, error) {
	var st OpCodeStats
	it := f.OpCodes()
	for {
		op, err := it.Next()
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		if err != nil {
			return st, err
		}
		switch {
		case !op.Code.IsKnown():
			st.Unknown++
		case op.Code.IsExpression():
			st.Expressions++
		default:
			st.Statements++
		}
		if op.Scope {
			st.Scopes++
		}
	}
}

// OpCode is one IFR record.
//
//	u8  op_code
//	u8  length:7 | scope:1
//	... payload (length-2 bytes)
type OpCode struct {
	Code   IFROpCode
	Length uint8 // including the 2-byte header
	Scope  bool
	Offset int // from the package start
	raw    []byte
}

// Bytes returns the whole record, header included.
func (o OpCode) Bytes() []byte { return o.raw }

// Payload returns the bytes after the 2-byte header. It is empty, not nil, for
// a 2-byte record.
func (o OpCode) Payload() []byte { return o.raw[format.OpHeaderSize:] }

// OpCodeIterator walks IFR records. Records are decoded structurally only, so
// op-codes past the known table are walked like any other.
type OpCodeIterator struct {
	data []byte
	off  int
	base int
	done bool
}

// Next returns the next record or io.EOF once the body is consumed. A record
// shorter than its own header, or one that runs past the body, is reported as
// ErrTruncated and ends the iteration.
func (it *OpCodeIterator) Next() (OpCode, error) {
	if it.done {
		return OpCode{}, io.EOF
	}
	if it.off == len(it.data) {
		it.done = true
		return OpCode{}, io.EOF
	}

	pos := it.base + it.off
	remaining := buf.Remaining(it.data, it.off)
	if !buf.Has(it.data, it.off, format.OpHeaderSize) {
		it.done = true
		return OpCode{}, fmt.Errorf("hii: op-code header at 0x%X needs %d bytes, have %d: %w",
			pos, format.OpHeaderSize, remaining, ErrTruncated)
	}

	lb := it.data[it.off+format.OpLengthOffset]
	length := int(lb & format.OpLengthMask)
	if length < format.OpHeaderSize {
		it.done = true
		return OpCode{}, fmt.Errorf("hii: op-code at 0x%X declares length %d: %w",
			pos, length, ErrTruncated)
	}
	raw, ok := buf.Slice(it.data, it.off, length)
	if !ok {
		it.done = true
		return OpCode{}, fmt.Errorf("hii: op-code at 0x%X length %d exceeds remaining %d bytes: %w",
			pos, length, remaining, ErrTruncated)
	}

	op := OpCode{
		Code:   IFROpCode(it.data[it.off+format.OpCodeOffset]),
		Length: uint8(length),
		Scope:  lb&format.OpScopeBit != 0,
		Offset: pos,
		raw:    raw,
	}
	it.off += length
	return op, nil
}

// Offset returns the body offset of the next record.
func (it *OpCodeIterator) Offset() int { return it.off }
