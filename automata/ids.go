package automata

import (
	"fmt"
	"sync/atomic"
)

// StateID identifies a state within an automaton.
type StateID int

// BlockSize is the number of state IDs an IDBlock is able to hand out.
const BlockSize = 65536

// blockSeed counts the ID blocks handed out so far, process-wide.
var blockSeed uint32

// IDBlock generates state IDs from a block of BlockSize consecutive IDs.
// Every block is disjoint from every other block, thus fragments built with
// different blocks never share a state ID.
//
// IDBlocks are not safe for concurrent use; creating new blocks is.
type IDBlock struct {
	origin StateID
	next   StateID
}

// NewIDBlock reserves a fresh block of state IDs. The first block starts
// at BlockSize; IDs 0…BlockSize-1 are never handed out.
func NewIDBlock() *IDBlock {
	seed := atomic.AddUint32(&blockSeed, 1)
	origin := StateID(seed) * BlockSize
	return &IDBlock{origin: origin, next: origin}
}

// Next returns the next unused ID of the block. It returns ErrIDSpaceExhausted
// after BlockSize IDs have been handed out.
func (b *IDBlock) Next() (StateID, error) {
	id, err := b.Peek()
	if err != nil {
		return id, err
	}
	b.next++
	return id, nil
}

// MustNext is like Next, but panics if the block is exhausted. It is intended
// for building small fragments, where exhausting a block is a programming error.
func (b *IDBlock) MustNext() StateID {
	id, err := b.Next()
	if err != nil {
		panic(err.Error())
	}
	return id
}

// Peek returns the ID the next call to Next will return, without consuming it.
func (b *IDBlock) Peek() (StateID, error) {
	if b.next > b.origin+BlockSize-1 {
		return b.next, fmt.Errorf("%w: a block can only generate IDs %d…%d",
			ErrIDSpaceExhausted, b.origin, b.origin+BlockSize-1)
	}
	return b.next, nil
}

// Range returns the first and the last ID of the block.
func (b *IDBlock) Range() (StateID, StateID) {
	return b.origin, b.origin + BlockSize - 1
}
