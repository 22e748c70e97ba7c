package machine

import (
	"plates/pkg/lexer"
	"plates/pkg/parser"
)

// coreStep is the main single-step execution function
// it returns (halted, error).
func coreStep(m *Machine) (bool, error) {
	in, ok := m.fetch()
	if !ok {
		// top-level program exhausted
		return true, nil
	}

	switch in.Op {
	case parser.OpPushData:
		m.stack.Push(NewInteger(in.Word))
		return false, nil

	case parser.OpPushFn:
		// a pushed name must resolve no later than here
		if err := m.resolve(in.Name, in.Pos); err != nil {
			return false, err
		}
		m.stack.Push(NewFunction(in.Name))
		return false, nil

	case parser.OpPushRand:
		m.stack.Push(NewInteger(uint32(m.rng.Intn(256))))
		return false, nil

	case parser.OpPushDup:
		w, ok := m.stack.Peek()
		if !ok {
			return false, newError(ErrStackUnderflow, in.Pos, "cannot duplicate the top of an empty stack")
		}
		m.stack.Push(w)
		return false, nil

	case parser.OpPushArg:
		f := m.currentFrame()
		if f == nil || int(in.Word) >= len(f.Args) {
			return false, newError(ErrType, in.Pos, "argument $%d does not exist", in.Word)
		}
		m.stack.Push(f.Args[in.Word])
		return false, nil

	case parser.OpCallIf:
		return false, m.callIf(in.Pos)

	case parser.OpExit:
		// unwind everything; no further instructions run
		m.frames = m.frames[:0]
		m.halted = true
		return true, nil

	default:
		return false, newError(ErrType, in.Pos, "unhandled instruction %s", in.Op)
	}
}

// fetch returns the next instruction and advances the cursor, popping
// exhausted frames so the caller resumes where it left off
func (m *Machine) fetch() (parser.Instruction, bool) {
	for {
		f := m.currentFrame()
		if f == nil {
			if m.ip >= len(m.code) {
				return parser.Instruction{}, false
			}
			in := m.code[m.ip]
			m.ip++
			return in, true
		}

		if f.IP < len(f.Body) {
			in := f.Body[f.IP]
			f.IP++
			return in, true
		}

		// body exhausted: return to the caller
		m.popFrame()
	}
}

// callIf implements CALLIF: pop the condition, pop the function reference,
// and invoke only on a nonzero condition. Both control words are consumed
// either way.
func (m *Machine) callIf(pos lexer.Position) error {
	cond, err := m.popInteger(pos)
	if err != nil {
		return err
	}

	name, err := m.popFunction(pos)
	if err != nil {
		return err
	}

	if cond == 0 {
		return nil
	}

	return m.call(name, pos)
}

// call dispatches a function by name, native or user-defined
func (m *Machine) call(name string, pos lexer.Position) error {
	if fn, ok := m.builtins[name]; ok {
		return fn(m, pos)
	}

	fn, ok := m.functions.Lookup(name)
	if !ok {
		return newError(ErrUnknownFunction, pos, "function '%s' is not defined", name)
	}

	if len(m.frames) >= m.maxDepth {
		return newError(ErrStackOverflow, pos, "call depth limit of %d exceeded by function '%s'", m.maxDepth, name)
	}

	// bind arguments: the word that was on top becomes $0
	args := make([]Word, fn.Params)
	for i := 0; i < fn.Params; i++ {
		w, ok := m.stack.Pop()
		if !ok {
			return newError(ErrStackUnderflow, pos, "too few arguments on the stack for function '%s'", name)
		}
		args[i] = w
	}

	m.pushFrame(fn, args)
	return nil
}

// resolve checks that a pushed function name exists in the function table or
// names a native subroutine
func (m *Machine) resolve(name string, pos lexer.Position) error {
	if parser.IsBuiltinName(name) {
		if _, ok := m.builtins[name]; !ok {
			return newError(ErrUnknownFunction, pos, "unrecognized built-in function '%s'", name)
		}
		return nil
	}

	if _, ok := m.functions.Lookup(name); !ok {
		return newError(ErrUnknownFunction, pos, "function '%s' is not defined", name)
	}

	return nil
}
