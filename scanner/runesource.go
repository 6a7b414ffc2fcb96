package scanner

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/lexfa"
	"golang.org/x/text/unicode/norm"
)

// RuneSource is a Source reading runes from an io.Reader. Spans are byte
// offsets into the input. Read errors other than io.EOF end the input and
// are available from Err.
type RuneSource struct {
	reader     io.RuneReader
	la         rune // lookahead
	laSize     int  // byte length of lookahead
	hasLA      bool
	eof        bool
	err        error
	lexeme     []rune
	lastSize   int    // byte length of the last rune handed out
	canUnget   bool   // has Get been called since Unget/Extract?
	start, end uint64 // as bytes index
	last       lexfa.Span
	nfc        bool
}

var _ Source[rune] = (*RuneSource)(nil)
var _ SpanReporter = (*RuneSource)(nil)

// SourceOption configures a RuneSource.
type SourceOption func(*RuneSource)

// NFC sets or clears option NFC: normalize the input to Unicode normalization
// form C before handing out runes. Spans will refer to the normalized input.
func NFC(b bool) SourceOption {
	return func(rs *RuneSource) {
		rs.nfc = b
	}
}

// NewRuneSource creates a source reading runes from r.
func NewRuneSource(r io.Reader, opts ...SourceOption) *RuneSource {
	rs := &RuneSource{}
	for _, opt := range opts {
		opt(rs)
	}
	if rs.nfc {
		r = norm.NFC.Reader(r)
	}
	if rr, ok := r.(io.RuneReader); ok {
		rs.reader = rr
	} else {
		rs.reader = bufio.NewReader(r)
	}
	return rs
}

// StringSource creates a source reading runes from s.
func StringSource(s string, opts ...SourceOption) *RuneSource {
	return NewRuneSource(strings.NewReader(s), opts...)
}

// HasNext is part of interface Source.
func (rs *RuneSource) HasNext() bool {
	return rs.lookahead()
}

// Get is part of interface Source.
func (rs *RuneSource) Get() (rune, bool) {
	if !rs.lookahead() {
		return 0, false
	}
	r := rs.la
	rs.hasLA = false
	rs.lexeme = append(rs.lexeme, r)
	rs.lastSize = rs.laSize
	rs.end += uint64(rs.laSize)
	rs.canUnget = true
	return r, true
}

// Unget is part of interface Source.
func (rs *RuneSource) Unget() error {
	if !rs.canUnget {
		return ErrNoPushback
	}
	rs.canUnget = false
	n := len(rs.lexeme) - 1
	rs.la, rs.laSize, rs.hasLA = rs.lexeme[n], rs.lastSize, true
	rs.lexeme = rs.lexeme[:n]
	rs.end -= uint64(rs.lastSize)
	return nil
}

// Extract is part of interface Source.
func (rs *RuneSource) Extract() []rune {
	rs.canUnget = false
	lexeme := rs.lexeme
	rs.lexeme = nil
	rs.last = lexfa.Span{rs.start, rs.end}
	rs.start = rs.end
	if lexeme == nil {
		return []rune{}
	}
	return lexeme
}

// LastSpan is part of interface SpanReporter.
func (rs *RuneSource) LastSpan() lexfa.Span {
	return rs.last
}

// Err returns the first read error other than io.EOF.
func (rs *RuneSource) Err() error {
	return rs.err
}

func (rs *RuneSource) lookahead() bool {
	if rs.hasLA {
		return true
	}
	if rs.eof {
		return false
	}
	r, sz, err := rs.reader.ReadRune()
	if err != nil {
		rs.eof = true
		if err != io.EOF {
			tracer().Debugf("input stops with read error: %v", err)
			rs.err = err
		}
		return false
	}
	rs.la, rs.laSize, rs.hasLA = r, sz, true
	return true
}
