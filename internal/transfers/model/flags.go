package model

// Flags select outputs by state and by type. A query matches an output when
// both one of its type bits and one of its state bits are set.
const (
	// IncludeStateUnlocked selects spendable outputs.
	IncludeStateUnlocked uint32 = 0x01

	// IncludeStateLocked selects pool outputs and outputs whose unlock time has not passed.
	IncludeStateLocked uint32 = 0x02

	// IncludeStateSoftLocked selects outputs not yet deep enough in the chain.
	IncludeStateSoftLocked uint32 = 0x04
	IncludeStateSpent      uint32 = 0x08

	IncludeTypeKey            uint32 = 0x100
	IncludeTypeMultisignature uint32 = 0x200

	IncludeStateAll uint32 = 0xff
	IncludeTypeAll  uint32 = 0xff00

	IncludeKeyUnlocked    = IncludeTypeKey | IncludeStateUnlocked
	IncludeKeyNotUnlocked = IncludeTypeKey | IncludeStateLocked | IncludeStateSoftLocked

	// IncludeAllLocked is the pending balance, IncludeAllUnlocked the spendable one.
	IncludeAllLocked   = IncludeTypeAll | IncludeStateLocked | IncludeStateSoftLocked
	IncludeAllUnlocked = IncludeTypeAll | IncludeStateUnlocked

	IncludeAll     = IncludeTypeAll | IncludeStateAll
	IncludeDefault = IncludeKeyUnlocked
)

// Included reports whether an output of type t in state state matches flags.
func Included(t OutputType, state, flags uint32) bool {
	typeMatch := (flags&IncludeTypeKey != 0 && t == OutputTypeKey) ||
		(flags&IncludeTypeMultisignature != 0 && t == OutputTypeMultisignature)
	return typeMatch && flags&state != 0
}
