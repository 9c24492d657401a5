package listing

import "sync/atomic"

// Token tags one asynchronous listing request.
type Token uint64

// Sequencer hands out increasing tokens so a caller can drop results from
// requests that were superseded while in flight. The zero value is ready.
type Sequencer struct {
	last atomic.Uint64
}

// Issue returns a token newer than every token issued before it.
func (s *Sequencer) Issue() Token {
	return Token(s.last.Add(1))
}

// IsLatest reports whether t is the most recently issued token.
func (s *Sequencer) IsLatest(t Token) bool {
	return s.last.Load() == uint64(t)
}
