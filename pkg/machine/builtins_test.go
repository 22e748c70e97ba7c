package machine_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"plates/pkg/machine"
)

func TestPrintSingleCharacter(t *testing.T) {
	var out bytes.Buffer
	m, err := run(t, "PUSH 0 PUSH 72 PUSH __print__ PUSH 1 CALLIF EXIT", machine.WithWriter(&out))
	if err != nil {
		t.Fatal(err)
	}

	if out.String() != "H" {
		t.Errorf("expected output %q, got %q", "H", out.String())
	}
	if !m.Exited() {
		t.Error("expected the machine to report EXIT")
	}
}

func TestPrintTopToBottom(t *testing.T) {
	// 'H' on top is emitted first
	var out bytes.Buffer
	_, err := run(t, "PUSH 0 PUSH 105 PUSH 72 PUSH __print__ PUSH 1 CALLIF", machine.WithWriter(&out))
	if err != nil {
		t.Fatal(err)
	}

	if out.String() != "Hi" {
		t.Errorf("expected output %q, got %q", "Hi", out.String())
	}
}

func TestPrintLeavesStackUntouched(t *testing.T) {
	var out bytes.Buffer
	m, err := run(t, "PUSH 33 PUSH 0 PUSH 104 PUSH 105 PUSH __print__ PUSH 1 CALLIF", machine.WithWriter(&out))
	if err != nil {
		t.Fatal(err)
	}

	words := m.Stack().Words()
	want := []uint32{33, 0, 104, 105}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %s", len(want), m.StackString())
	}
	for i, w := range want {
		if words[i].Kind != machine.KindInteger || words[i].Int != w {
			t.Errorf("word %d: expected %d, got %s", i, w, words[i])
		}
	}
	if out.String() != "ih" {
		t.Errorf("expected output %q, got %q", "ih", out.String())
	}
}

func TestPrintRejectsFunctionRef(t *testing.T) {
	source := "DEFN foo (0) {} PUSH 0 PUSH foo PUSH 72 PUSH __print__ PUSH 1 CALLIF"
	_, err := run(t, source)
	requireKind(t, err, machine.ErrType)
}

func TestPrintRejectsInvalidCodePoint(t *testing.T) {
	// 0xD800 is a surrogate, not a scalar value
	_, err := run(t, "PUSH 0 PUSH 55296 PUSH __print__ PUSH 1 CALLIF")
	requireKind(t, err, machine.ErrType)
}

func TestPrintWithoutTerminator(t *testing.T) {
	m, err := run(t, "PUSH 72 PUSH __print__ PUSH 1 CALLIF")
	requireKind(t, err, machine.ErrStackUnderflow)

	// the scan is non-destructive even when it fails
	if m.Stack().Size() != 1 {
		t.Errorf("expected the stack untouched, got %s", m.StackString())
	}
}

func TestInputPushesCharacters(t *testing.T) {
	m, err := run(t, "PUSH __input__ PUSH 1 CALLIF",
		machine.WithReader(strings.NewReader("Hi\n")))
	if err != nil {
		t.Fatal(err)
	}

	// first character read ends up deepest, last on top
	words := m.Stack().Words()
	if len(words) != 2 || words[0].Int != 'H' || words[1].Int != 'i' {
		t.Errorf("expected [72, 105], got %s", m.StackString())
	}
}

func TestInputWithoutNewline(t *testing.T) {
	m, err := run(t, "PUSH __input__ PUSH 1 CALLIF",
		machine.WithReader(strings.NewReader("ok")))
	if err != nil {
		t.Fatal(err)
	}

	if m.Stack().Size() != 2 {
		t.Errorf("expected 2 words, got %s", m.StackString())
	}
}

func TestInputAtEndOfStream(t *testing.T) {
	// a clean end-of-stream pushes nothing and is not an error
	m, err := run(t, "PUSH __input__ PUSH 1 CALLIF",
		machine.WithReader(strings.NewReader("")))
	if err != nil {
		t.Fatal(err)
	}

	if m.Stack().Size() != 0 {
		t.Errorf("expected an empty stack, got %s", m.StackString())
	}
}

func TestNand(t *testing.T) {
	tests := []struct {
		name string
		a, b uint32
		want uint32
	}{
		{"all ones", 4294967295, 4294967295, 0},
		{"all zeros", 0, 0, 4294967295},
		{"mixed", 4294967295, 0, 4294967295},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			source := "PUSH " + strconv.FormatUint(uint64(test.a), 10) +
				" PUSH " + strconv.FormatUint(uint64(test.b), 10) +
				" PUSH __nand__ PUSH 1 CALLIF"

			m, err := run(t, source)
			if err != nil {
				t.Fatal(err)
			}

			top, _ := m.Stack().Peek()
			if top.Int != test.want {
				t.Errorf("nand(%d, %d): expected %d, got %d", test.a, test.b, test.want, top.Int)
			}
			if m.Stack().Size() != 1 {
				t.Errorf("expected both operands consumed, got %s", m.StackString())
			}
		})
	}
}

func TestShiftLeftDiscardsHighBit(t *testing.T) {
	m, err := run(t, "PUSH 2147483648 PUSH __shift_left__ PUSH 1 CALLIF")
	if err != nil {
		t.Fatal(err)
	}

	top, _ := m.Stack().Peek()
	if top.Int != 0 {
		t.Errorf("expected 0, got %d", top.Int)
	}
}

func TestShiftLeft(t *testing.T) {
	m, err := run(t, "PUSH 3 PUSH __shift_left__ PUSH 1 CALLIF")
	if err != nil {
		t.Fatal(err)
	}

	top, _ := m.Stack().Peek()
	if top.Int != 6 {
		t.Errorf("expected 6, got %d", top.Int)
	}
}

func TestShiftRightDiscardsLowBit(t *testing.T) {
	m, err := run(t, "PUSH 1 PUSH __shift_right__ PUSH 1 CALLIF")
	if err != nil {
		t.Fatal(err)
	}

	top, _ := m.Stack().Peek()
	if top.Int != 0 {
		t.Errorf("expected 0, got %d", top.Int)
	}
}

func TestBuiltinUnderflow(t *testing.T) {
	tests := []string{
		"PUSH __nand__ PUSH 1 CALLIF",
		"PUSH 1 PUSH __nand__ PUSH 1 CALLIF",
		"PUSH __shift_left__ PUSH 1 CALLIF",
		"PUSH __shift_right__ PUSH 1 CALLIF",
	}

	for _, source := range tests {
		_, err := run(t, source)
		requireKind(t, err, machine.ErrStackUnderflow)
	}
}

func TestBuiltinTypeError(t *testing.T) {
	source := "DEFN foo (0) {} PUSH foo PUSH 1 PUSH __nand__ PUSH 1 CALLIF"
	_, err := run(t, source)
	requireKind(t, err, machine.ErrType)
}

func TestBuiltinSkippedOnZeroCondition(t *testing.T) {
	var out bytes.Buffer
	m, err := run(t, "PUSH 0 PUSH 72 PUSH __print__ PUSH 0 CALLIF", machine.WithWriter(&out))
	if err != nil {
		t.Fatal(err)
	}

	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
	// only the two control words were consumed
	if m.Stack().Size() != 2 {
		t.Errorf("expected 2 words, got %s", m.StackString())
	}
}
