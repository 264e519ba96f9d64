/*
Package linebreak computes line-breaking opportunities in Unicode text
according to Unicode Standard Annex #14 (UAX #14).

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

UAX #14 defines a set of code-point classes and an ordered list of rules
which decide, for every position between two code points of a text, whether
a line break is forbidden, mandatory, allowed, or left undecided.

This package does not hard-code the 31 UAX #14 rules as a cascade of Go
if-statements. Instead it compiles a small declarative rule language (see
ParseRules) into a tree of Pattern nodes, and a Matcher walks that tree
outward from every candidate break position. Where a hand-written
implementation turns each UAX prose rule into a small, separately testable
recognizer function, here the "recognizer functions" are themselves data:
rows of an ordered rule table, parsed once and reused by every Checker.

Typical Usage

	checker, err := linebreak.NewChecker()
	if err != nil {
		log.Fatal(err)
	}
	checker.SetText("The quick brown fox.")
	for _, seg := range checker.Iterate() {
		fmt.Println(seg.Text, seg.BreakType)
	}

Clients who need to query a single position directly use IsBreakAt:

	bt := checker.IsBreakAt(7)
	if bt.Is(linebreak.Mandatory | linebreak.Allowed) {
		// may break the line here
	}
*/
package linebreak

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer. Package linebreak routes its debug and error
// output through it; internal/ucd, internal/gen and cmd/lbconform do not.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
