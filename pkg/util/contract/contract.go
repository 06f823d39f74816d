// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package contract

import (
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// Kind identifies the category of a precondition violation.
type Kind uint8

const (
	// OutOfRange indicates a bit position, byte lane, flat index or read index
	// outside the domain of an operation.
	OutOfRange Kind = iota
	// InvalidBit indicates a bit value other than 0 or 1.
	InvalidBit
	// StringUnderflow indicates a string with too few characters remaining to
	// decode the requested number of bits.
	StringUnderflow
)

func (k Kind) String() string {
	switch k {
	case OutOfRange:
		return "out-of-range"
	case InvalidBit:
		return "invalid-bit"
	case StringUnderflow:
		return "string-underflow"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Violation describes a single precondition failure detected by an operation.
// It implements error, such that a strict policy can surface it to the caller.
type Violation struct {
	// Kind of violation
	Kind Kind
	// Name of the operation which detected the violation (e.g. "BitAt").
	Op string
	// Human-readable description of what went wrong.
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s (%s)", v.Op, v.Message, v.Kind)
}

// Policy determines what happens when an operation detects a precondition
// violation.  A policy either surfaces the violation (e.g. by panicking) or
// returns, in which case the operation proceeds with its documented fallback.
type Policy interface {
	Fail(*Violation)
}

// PolicyFunc adapts an ordinary function into a Policy.
type PolicyFunc func(*Violation)

// Fail implementation for the Policy interface.
func (f PolicyFunc) Fail(v *Violation) {
	f(v)
}

type strictPolicy struct{}

func (strictPolicy) Fail(v *Violation) {
	panic(v)
}

type permissivePolicy struct{}

func (permissivePolicy) Fail(*Violation) {}

type loggingPolicy struct{}

func (loggingPolicy) Fail(v *Violation) {
	log.WithFields(log.Fields{
		"op":   v.Op,
		"kind": v.Kind.String(),
	}).Warn(v.Message)
}

// Strict panics with the *Violation.  Use Catch to turn such a panic back
// into an error.
var Strict Policy = strictPolicy{}

// Permissive ignores all violations.
var Permissive Policy = permissivePolicy{}

// Logging reports each violation as a warning and then continues.
var Logging Policy = loggingPolicy{}

var current atomic.Pointer[Policy]

func init() {
	current.Store(&Permissive)
}

// Default returns the policy used by engines constructed without an explicit
// policy.
func Default() Policy {
	return *current.Load()
}

// SetDefault replaces the default policy, returning the one it replaced.
// Engines capture their policy on construction, hence this does not affect
// engines which already exist.
func SetDefault(p Policy) Policy {
	if p == nil {
		p = Permissive
	}
	//
	return *current.Swap(&p)
}

// Failf reports a violation of the given kind to a policy.  A nil policy is
// treated as permissive.
func Failf(p Policy, kind Kind, op string, format string, args ...any) {
	if p == nil {
		return
	}
	//
	p.Fail(&Violation{kind, op, fmt.Sprintf(format, args...)})
}

// Catch runs fn and converts a Violation raised by a strict policy into an
// error.  Any other panic is propagated unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(*Violation)
			if !ok {
				panic(r)
			}
			//
			err = v
		}
	}()
	//
	fn()
	//
	return nil
}
