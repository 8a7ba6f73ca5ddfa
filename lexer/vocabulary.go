// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/fisherprime/uir/types"
)

type (
	// Vocabulary selects the keyword families of an IR dialect revision.
	Vocabulary int

	// families holds the literal word sets of a Vocabulary.
	families struct {
		declarations types.WordList
		types        types.WordList
		instructions types.WordList
		modifiers    types.WordList
	}
)

const (
	// Current is the present IR dialect; the default.
	Current Vocabulary = iota
	// Legacy is the older IR dialect, (`func`, `RETVOID`, `NEWSTACK`, ...).
	Legacy
)

// Vocabulary errors.
var (
	ErrUnknownVocabulary = errors.New("unknown vocabulary")
)

var vocabularyNames = map[Vocabulary]string{
	Current: "current",
	Legacy:  "legacy",
}

var currentFamilies = families{
	declarations: types.ParseWordList(`.typedef .funcsig .const .global .funcdef .funcdecl .expose`),
	types: types.ParseWordList(`int float double uptr ufuncptr
		struct hybrid array vector void
		ref iref weakref tagref64
		funcref threadref stackref framecursorref`),
	instructions: types.ParseWordList(`ADD SUB MUL UDIV SDIV UREM SREM SHL LSHR ASHR AND OR XOR
		FADD FSUB FMUL FDIV FREM
		EQ NE ULT ULE UGT UGE SLT SLE SGT SGE
		FTRUE FFALSE FORD FOEQ FONE FOLT FOLE FOGT FOGE
		FUNO FUEQ FUNE FULT FULE FUGT FUGE
		TRUNC ZEXT SEXT FPTRUNC FPEXT FPTOUI FPTOSI UITOFP SITOFP
		BITCAST REFCAST PTRCAST
		SELECT BRANCH BRANCH2 SWITCH CALL TAILCALL RET THROW
		EXTRACTVALUE INSERTVALUE EXTRACTELEMENT INSERTELEMENT SHUFFLEVECTOR
		NEW NEWHYBRID ALLOCA ALLOCAHYBRID GETIREF GETFIELDIREF
		GETELEMIREF SHIFTIREF GETVARPARTIREF
		LOAD STORE CMPXCHG ATOMICRMW FENCE TRAP WATCHPOINT WPBRANCH
		CCALL NEWTHREAD SWAPSTACK COMMINST`),
	modifiers: types.ParseWordList(`NOT_ATOMIC RELAXED CONSUME ACQUIRE RELEASE ACQ_REL SEQ_CST
		XCHG ADD SUB AND NAND OR XOR MIN MAX UMIN UMAX
		bitsf bitsd
		DEFAULT PTR WEAK EXC KEEPALIVE WPEXC RET_WITH KILL_OLD
		PASS_VALUES THROW_EXC`),
}

var legacyFamilies = families{
	declarations: types.ParseWordList(`.typedef .funcsig .const .global .funcdef .funcdecl`),
	types: types.ParseWordList(`int float double ref iref weakref struct array hybrid void func
		thread stack tagref64 vector`),
	instructions: types.ParseWordList(`ADD SUB MUL UDIV SDIV UREM SREM SHL LSHR ASHR AND OR XOR
		FADD FSUB FMUL FDIV FREM
		EQ NE ULT ULE UGT UGE SLT SLE SGT SGE
		FTRUE FFALSE FORD FOEQ FONE FOLT FOLE FOGT FOGE
		FUNO FUEQ FUNE FULT FULE FUGT FUGE
		TRUNC ZEXT SEXT FPTRUNC FPEXT FPTOUI FPTOSI UITOFP SITOFP
		BITCAST REFCAST
		SELECT BRANCH BRANCH2 SWITCH PHI CALL TAILCALL
		RET RETVOID THROW LANDINGPAD EXTRACTVALUE INSERTVALUE
		EXTRACTELEMENT INSERTELEMENT SHUFFLEVECTOR
		NEW NEWHYBRID ALLOCA ALLOCAHYBRID GETIREF GETFIELDIREF
		GETELEMIREF SHIFTIREF GETFIXEDPARTIREF GETVARPARTIREF
		LOAD STORE CMPXCHG ATOMICRMW FENCE TRAP WATCHPOINT
		CCALL NEWSTACK SWAPSTACK COMMINST`),
	modifiers: types.ParseWordList(`NOT_ATOMIC RELAXED CONSUME ACQUIRE
		RELEASE ACQ_REL SEQ_CST
		XCHG ADD SUB AND NAND OR XOR MIN MAX UMIN UMAX
		DEFAULT
		bitsf bitsd VEC VERSION EXC KEEPALIVE WEAK WPEXC
		RET_WITH KILL_OLD
		PASS_VALUE PASS_VOID THROW_EXC`),
}

// ParseVocabulary obtains the Vocabulary identified by name, (case insensitive).
func ParseVocabulary(name string) (v Vocabulary, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for key, val := range vocabularyNames {
		if val == name {
			v = key
			return
		}
	}
	err = fmt.Errorf("%w: %q", ErrUnknownVocabulary, name)

	return
}

// String is the `fmt.Stringer` interface implementation for Vocabulary.
func (v Vocabulary) String() string {
	if name, ok := vocabularyNames[v]; ok {
		return name
	}

	return fmt.Sprintf("Vocabulary(%d)", int(v))
}
