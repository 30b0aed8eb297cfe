package vm

import (
	"errors"
)

// Taken evaluates a branch condition against the flags.
func (m *Machine) Taken(cond Cond) (taken bool, err error) {
	switch cond {
	case COND_EQ:
		taken = m.Flags&FLAG_Z != 0
	case COND_NE:
		taken = m.Flags&FLAG_Z == 0
	case COND_LT:
		n := m.Flags&FLAG_N != 0
		v := m.Flags&FLAG_V != 0
		taken = n != v
	default:
		err = errors.Join(ErrIllegalInstruction, ErrOpcodeCond)
	}

	return
}

// Branch transfers control. A taken branch adds the displacement to the
// address of the branch; otherwise the pc steps over the branch.
func (m *Machine) Branch(cond Cond, off int32) (err error) {
	taken, err := m.Taken(cond)
	if err != nil {
		return
	}

	if taken {
		m.Pc += uint32(off)
	} else {
		m.Pc += SIZE_BRANCH
	}

	return
}
