// Package testutils provides utilities for testing interpreter code in
// Go.
package testutils

import (
	"errors"
	"sync"
	"testing"

	"github.com/mkvt/schemette"
)

// testVM is the VM used for all tests.
var testVM *schemette.VM

var testVMInit sync.Once

// TestingVM returns a VM for testing. The VM is shared by all tests that
// use this package.
func TestingVM() *schemette.VM {
	testVMInit.Do(ResetTestingVM)
	return testVM
}

// ResetTestingVM reinitializes the VM returned by TestingVM, dropping
// every definition made so far. It is not safe to call this in parallel
// tests.
func ResetTestingVM() {
	testVM = schemette.NewVM()
}

// A SourceTestCase is a test case containing source code and a predicate
// to check the result.
type SourceTestCase struct {
	// Source is the source code to evaluate.
	Source string
	// Pass is a predicate taking the result of evaluating Source. If
	// Pass returns false, then the test fails.
	Pass func(result schemette.Object, err error) bool
}

// TestFunc returns a test function for the test case. This uses
// TestingVM to evaluate the code, so definitions persist into later
// cases.
func (c SourceTestCase) TestFunc() func(*testing.T) {
	return func(t *testing.T) {
		vm := TestingVM()
		r, err := vm.DoString(c.Source)
		if !c.Pass(r, err) {
			if err != nil {
				t.Errorf("%q produced wrong result; evaluation failed: %v", c.Source, err)
			} else {
				t.Errorf("%q produced wrong result; got %s", c.Source, schemette.ToText(r))
			}
		}
	}
}

// PassPrinted returns a Pass function for a SourceTestCase that
// predicates on the result's printed form.
func PassPrinted(want string) func(schemette.Object, error) bool {
	return func(result schemette.Object, err error) bool {
		return err == nil && schemette.ToText(result) == want
	}
}

// PassEqual returns a Pass function for a SourceTestCase that
// predicates on structural equality with want.
func PassEqual(want schemette.Object) func(schemette.Object, error) bool {
	return func(result schemette.Object, err error) bool {
		return err == nil && schemette.Equal(want, result)
	}
}

// PassIdentical returns a Pass function for a SourceTestCase that
// predicates on identity, i.e. the result must be exactly the given
// object.
func PassIdentical(want schemette.Object) func(schemette.Object, error) bool {
	return func(result schemette.Object, err error) bool {
		return err == nil && want == result
	}
}

// PassFailure returns a Pass function for a SourceTestCase that returns
// true iff evaluation failed, whatever the kind.
func PassFailure() func(schemette.Object, error) bool {
	return func(result schemette.Object, err error) bool {
		return err != nil
	}
}

// PassSyntaxError returns a Pass function for a SourceTestCase that
// returns true iff evaluation failed with a SyntaxError.
func PassSyntaxError() func(schemette.Object, error) bool {
	return func(result schemette.Object, err error) bool {
		var kind schemette.SyntaxError
		return errors.As(err, &kind)
	}
}

// PassNameError returns a Pass function for a SourceTestCase that
// returns true iff evaluation failed with a NameError.
func PassNameError() func(schemette.Object, error) bool {
	return func(result schemette.Object, err error) bool {
		var kind schemette.NameError
		return errors.As(err, &kind)
	}
}

// PassRuntimeError returns a Pass function for a SourceTestCase that
// returns true iff evaluation failed with a RuntimeError.
func PassRuntimeError() func(schemette.Object, error) bool {
	return func(result schemette.Object, err error) bool {
		var kind schemette.RuntimeError
		return errors.As(err, &kind)
	}
}
