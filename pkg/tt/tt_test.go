package tt

import (
	"fmt"
	"strings"
	"testing"
)

// testT implements the T interface and records the errors written to it.
type testT []string

func (t *testT) Helper() {}

func (t *testT) Errorf(format string, args ...any) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

// Simple functions to test.

func mul(x, y int) int {
	return x * y
}

func divmod(x, y int) (int, int) {
	return x / y, x % y
}

func TestTTPass(t *testing.T) {
	var testT testT
	Test(&testT, Fn("divmod", divmod), Table{
		Args(17, 5).Rets(3, 2),
	})
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass")
	}
}

func TestTTFailDefaultFmtOneReturn(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("mul", mul),
		Table{Args(2, 10).Rets(21)},
	)
	assertOneError(t, testT, "mul(2, 10) returns (-Wanted +Actual):\n")
}

func TestTTFailDefaultFmtMultiReturn(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("divmod", divmod),
		Table{Args(17, 5).Rets(3, 4)},
	)
	assertOneError(t, testT, "divmod(17, 5) returns (-Wanted +Actual):\n")
}

func TestTTFailCustomFmt(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("divmod", divmod).ArgsFmt("x = %d, y = %d").RetsFmt("(q = %d, r = %d)"),
		Table{Args(17, 5).Rets(3, 4)},
	)
	assertOneError(t, testT,
		"divmod(x = 17, y = 5) returns (-Wanted +Actual):\n")
}

func TestTTMatcher(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("divmod", divmod),
		Table{Args(17, 5).Rets(Any, 2)},
	)
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass")
	}
}

func assertOneError(t *testing.T, testT testT, wantPrefix string) {
	t.Helper()
	switch len(testT) {
	case 0:
		t.Errorf("Test didn't error when it should have done so")
	case 1:
		if !strings.HasPrefix(testT[0], wantPrefix) {
			t.Errorf("Test wrote message:\nWanted: %q...\nActual: %q", wantPrefix, testT[0])
		}
	default:
		t.Errorf("Test wrote too many error messages")
	}
}
