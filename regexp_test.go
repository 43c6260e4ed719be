package jsregexp

import (
	"errors"
	"testing"

	"github.com/coregx/jsregexp/values"
)

// TestParseFlags tests flag parsing, including rejects.
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Flags
		wantErr bool
	}{
		{"empty", "", 0, false},
		{"global", "g", FlagGlobal, false},
		{"all", "gimsuy", FlagGlobal | FlagIgnoreCase | FlagMultiline | FlagDotAll | FlagUnicode | FlagSticky, false},
		{"order independent", "ug", FlagGlobal | FlagUnicode, false},
		{"duplicate", "gg", 0, true},
		{"unknown", "x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFlags(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFlags) {
					t.Errorf("ParseFlags(%q) error = %v, want ErrInvalidFlags", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseFlags(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestFlagsString tests canonical ordering.
func TestFlagsString(t *testing.T) {
	f, err := ParseFlags("yug")
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if got := f.String(); got != "guy" {
		t.Errorf("Flags.String() = %q, want %q", got, "guy")
	}
}

// TestMustCompilePanics tests panic on an invalid pattern.
func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()
	MustCompile("(", "")
}

// execObject runs the builtin exec and requires a result object.
func execObject(t *testing.T, re *RegExp, s string) *values.Object {
	t.Helper()
	res, err := re.Exec(values.NewString(s))
	if err != nil {
		t.Fatalf("Exec(%q) error = %v", s, err)
	}
	obj, ok := values.AsObject(res)
	if !ok {
		t.Fatalf("Exec(%q) = %v, want a result object", s, res)
	}
	return obj
}

func getProp(t *testing.T, o *values.Object, name string) values.Value {
	t.Helper()
	v, err := o.Get(values.StringKey(name))
	if err != nil {
		t.Fatalf("Get(%q) error = %v", name, err)
	}
	return v
}

// TestBuiltinExecResultShape tests the result object of a successful
// builtin match.
func TestBuiltinExecResultShape(t *testing.T) {
	re := MustCompile(`(\w+)@(\w+)`, "")
	res := execObject(t, re, "send to me@home today")

	if got := getProp(t, res, "index"); got != values.Number(8) {
		t.Errorf("index = %v, want 8", got)
	}
	if got := getProp(t, res, "length"); got != values.Number(3) {
		t.Errorf("length = %v, want 3", got)
	}
	if got := getProp(t, res, "input").(values.String); got.String() != "send to me@home today" {
		t.Errorf("input = %q, want the subject", got.String())
	}
	if got := getProp(t, res, "0").(values.String); got.String() != "me@home" {
		t.Errorf("capture 0 = %q, want %q", got.String(), "me@home")
	}
	if got := getProp(t, res, "1").(values.String); got.String() != "me" {
		t.Errorf("capture 1 = %q, want %q", got.String(), "me")
	}
	if got := getProp(t, res, "2").(values.String); got.String() != "home" {
		t.Errorf("capture 2 = %q, want %q", got.String(), "home")
	}
	if got := getProp(t, res, "groups"); !values.IsUndefined(got) {
		t.Errorf("groups = %v, want undefined without named groups", got)
	}
}

// TestBuiltinExecNonParticipatingGroup tests the undefined capture.
func TestBuiltinExecNonParticipatingGroup(t *testing.T) {
	re := MustCompile("a(b)?(c)", "")
	res := execObject(t, re, "ac")

	if got := getProp(t, res, "1"); !values.IsUndefined(got) {
		t.Errorf("capture 1 = %v, want undefined", got)
	}
	if got := getProp(t, res, "2").(values.String); got.String() != "c" {
		t.Errorf("capture 2 = %q, want %q", got.String(), "c")
	}
}

// TestBuiltinExecNamedGroups tests the groups object.
func TestBuiltinExecNamedGroups(t *testing.T) {
	re := MustCompile("(?<year>[0-9]{4})", "")
	res := execObject(t, re, "in 2024 ce")

	groupsVal := getProp(t, res, "groups")
	groups, ok := values.AsObject(groupsVal)
	if !ok {
		t.Fatalf("groups = %v, want an object", groupsVal)
	}
	year, err := groups.Get(values.StringKey("year"))
	if err != nil {
		t.Fatalf("Get(year) error = %v", err)
	}
	if s, ok := year.(values.String); !ok || s.String() != "2024" {
		t.Errorf("groups.year = %v, want %q", year, "2024")
	}
}

// TestBuiltinExecLastIndexProtocol tests the cursor rules per flag
// combination.
func TestBuiltinExecLastIndexProtocol(t *testing.T) {
	t.Run("non-global ignores and preserves lastIndex", func(t *testing.T) {
		re := MustCompile("a", "")
		if err := SetLastIndex(re, 5); err != nil {
			t.Fatal(err)
		}
		res := execObject(t, re, "abc")
		if got := getProp(t, res, "index"); got != values.Number(0) {
			t.Errorf("index = %v, want 0: non-global must match from the start", got)
		}
		got, _ := GetLastIndex(re)
		if got != values.Number(5) {
			t.Errorf("lastIndex = %v, want untouched 5", got)
		}
	})

	t.Run("global resumes from lastIndex and updates it", func(t *testing.T) {
		re := MustCompile("a", "g")
		res := execObject(t, re, "a_a")
		if got := getProp(t, res, "index"); got != values.Number(0) {
			t.Errorf("first index = %v, want 0", got)
		}
		got, _ := GetLastIndex(re)
		if got != values.Number(1) {
			t.Fatalf("lastIndex after first match = %v, want 1", got)
		}

		res = execObject(t, re, "a_a")
		if got := getProp(t, res, "index"); got != values.Number(2) {
			t.Errorf("second index = %v, want 2", got)
		}
	})

	t.Run("global miss resets lastIndex", func(t *testing.T) {
		re := MustCompile("z", "g")
		if err := SetLastIndex(re, 1); err != nil {
			t.Fatal(err)
		}
		res, err := re.Exec(values.NewString("abc"))
		if err != nil {
			t.Fatalf("Exec() error = %v", err)
		}
		if !values.IsNull(res) {
			t.Fatalf("Exec() = %v, want Null", res)
		}
		got, _ := GetLastIndex(re)
		if got != values.Number(0) {
			t.Errorf("lastIndex = %v, want reset to 0", got)
		}
	})

	t.Run("lastIndex beyond length is a miss and resets", func(t *testing.T) {
		re := MustCompile("a", "g")
		if err := SetLastIndex(re, 99); err != nil {
			t.Fatal(err)
		}
		res, err := re.Exec(values.NewString("aaa"))
		if err != nil {
			t.Fatalf("Exec() error = %v", err)
		}
		if !values.IsNull(res) {
			t.Fatalf("Exec() = %v, want Null", res)
		}
		got, _ := GetLastIndex(re)
		if got != values.Number(0) {
			t.Errorf("lastIndex = %v, want reset to 0", got)
		}
	})

	t.Run("sticky requires a match exactly at lastIndex", func(t *testing.T) {
		re := MustCompile("b", "y")
		res, err := re.Exec(values.NewString("ab"))
		if err != nil {
			t.Fatalf("Exec() error = %v", err)
		}
		if !values.IsNull(res) {
			t.Fatalf("sticky Exec() at 0 = %v, want Null", res)
		}

		if err := SetLastIndex(re, 1); err != nil {
			t.Fatal(err)
		}
		resObj := execObject(t, re, "ab")
		if got := getProp(t, resObj, "index"); got != values.Number(1) {
			t.Errorf("sticky index = %v, want 1", got)
		}
		got, _ := GetLastIndex(re)
		if got != values.Number(2) {
			t.Errorf("sticky lastIndex = %v, want 2", got)
		}
	})

	t.Run("non-numeric lastIndex coerces via ToLength", func(t *testing.T) {
		re := MustCompile("a", "g")
		if err := setLastIndexValue(re, values.NewString("2")); err != nil {
			t.Fatal(err)
		}
		res := execObject(t, re, "a_a")
		if got := getProp(t, res, "index"); got != values.Number(2) {
			t.Errorf("index = %v, want 2 after coercing lastIndex %q", got, "2")
		}
	})
}

// TestBuiltinExecMissingArgument tests that a call without a subject
// coerces undefined to the string "undefined".
func TestBuiltinExecMissingArgument(t *testing.T) {
	execFn, err := Prototype().Get(values.StringKey("exec"))
	if err != nil {
		t.Fatalf("Get(exec) error = %v", err)
	}
	fn, ok := values.AsCallable(execFn)
	if !ok {
		t.Fatal("prototype exec is not callable")
	}

	re := MustCompile("fine", "")
	res, err := values.Call(fn, re)
	if err != nil {
		t.Fatalf("exec() error = %v", err)
	}
	obj, ok := values.AsObject(res)
	if !ok {
		t.Fatalf("exec() = %v, want a match against %q", res, "undefined")
	}
	if got := getProp(t, obj, "input").(values.String); got.String() != "undefined" {
		t.Errorf("input = %q, want %q", got.String(), "undefined")
	}
	if got := getProp(t, obj, "index"); got != values.Number(4) {
		t.Errorf("index = %v, want 4", got)
	}
}

// TestBuiltinExecUnicodeOffsets tests astral-plane offsets in UTF-16
// units.
func TestBuiltinExecUnicodeOffsets(t *testing.T) {
	re := MustCompile(".", "gu")
	res := execObject(t, re, "𝌆b")

	if got := getProp(t, res, "index"); got != values.Number(0) {
		t.Errorf("index = %v, want 0", got)
	}
	if got := getProp(t, res, "0").(values.String); got.Len() != 2 {
		t.Errorf("match length = %d code units, want the whole pair (2)", got.Len())
	}
	got, _ := GetLastIndex(re)
	if got != values.Number(2) {
		t.Errorf("lastIndex = %v, want 2 (past the pair)", got)
	}
}

// TestExecWithInfo tests recording into a caller-scoped record.
func TestExecWithInfo(t *testing.T) {
	re := MustCompile("(b)(x)?", "")
	info := NewMatchInfo()

	res, err := re.ExecWithInfo(values.NewString("abc"), info)
	if err != nil {
		t.Fatalf("ExecWithInfo() error = %v", err)
	}
	if values.IsNull(res) {
		t.Fatal("ExecWithInfo() = Null, want a match")
	}

	if got := info.CaptureCount(); got != 6 {
		t.Errorf("CaptureCount() = %d, want 6", got)
	}
	whole, ok := info.CaptureString(0)
	if !ok || whole.String() != "b" {
		t.Errorf("CaptureString(0) = %q, %v; want %q, true", whole.String(), ok, "b")
	}
	if _, ok := info.CaptureString(2); ok {
		t.Error("CaptureString(2) ok = true, want false for non-participating group")
	}
	if !info.Subject().Equal(values.NewString("abc")) {
		t.Errorf("Subject() = %q, want the subject", info.Subject().String())
	}
}

// TestRegExpAccessors tests the trivial getters.
func TestRegExpAccessors(t *testing.T) {
	re := MustCompile("a(b)", "gu")
	if re.Source() != "a(b)" {
		t.Errorf("Source() = %q, want %q", re.Source(), "a(b)")
	}
	if re.Flags() != FlagGlobal|FlagUnicode {
		t.Errorf("Flags() = %v, want gu", re.Flags())
	}
	if re.GroupCount() != 2 {
		t.Errorf("GroupCount() = %d, want 2", re.GroupCount())
	}
}
