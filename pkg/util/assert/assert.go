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
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/consensys/go-bitword/pkg/util/contract"
)

// Equal errors if actual is not equal to expected.  Integers of differing
// types are considered equal when they hold the same numeric value, such that
// (for example) uint8(1) equals the untyped constant 1.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || sameInteger(expected, actual) {
		return
	}
	//
	fail(t, fmt.Sprintf("expected: %v, actual: %v", expected, actual), msg)
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		fail(t, "condition is false", msg)
	}
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		fail(t, "condition is true", msg)
	}
}

// Violates errors unless fn reports a contract violation of the given kind to
// a strict policy.
func Violates(t *testing.T, kind contract.Kind, fn func(), msg ...any) {
	var v *contract.Violation
	//
	t.Helper()
	//
	err := contract.Catch(fn)
	//
	switch {
	case err == nil:
		fail(t, fmt.Sprintf("expected %s violation, got none", kind), msg)
	case !errors.As(err, &v):
		fail(t, fmt.Sprintf("expected %s violation, got %v", kind, err), msg)
	case v.Kind != kind:
		fail(t, fmt.Sprintf("expected %s violation, got %s", kind, v.Kind), msg)
	}
}

func fail(t *testing.T, reason string, msg []any) {
	t.Helper()
	t.Error(reason)
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}

// sameInteger returns whether both arguments are integers (of any type) holding
// the same value.
func sameInteger(expected, actual any) bool {
	lneg, lmag, lok := magnitude(expected)
	rneg, rmag, rok := magnitude(actual)
	//
	return lok && rok && lneg == rneg && lmag == rmag
}

// magnitude splits an integer into its sign and absolute value, such that every
// signed and unsigned value has a unique representation.
func magnitude(x any) (bool, uint64, bool) {
	var v = reflect.ValueOf(x)
	//
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := v.Int(); i < 0 {
			return true, uint64(-(i + 1)) + 1, true
		}
		//
		return false, uint64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return false, v.Uint(), true
	default:
		return false, 0, false
	}
}
