package x11

import (
	"reflect"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestParseModStringCombinesTokens(t *testing.T) {
	mask, err := parseModString("Mod4-Shift")
	if err != nil {
		t.Fatalf("parseModString() error = %v", err)
	}
	want := uint16(xproto.ModMask4 | xproto.ModMaskShift)
	if mask != want {
		t.Fatalf("mask = %b, want %b", mask, want)
	}
}

func TestParseModStringEmptyIsZero(t *testing.T) {
	mask, err := parseModString("")
	if err != nil || mask != 0 {
		t.Fatalf("parseModString(\"\") = %d, %v, want 0, nil", mask, err)
	}
}

func TestParseModStringRejectsUnknownToken(t *testing.T) {
	if _, err := parseModString("Mod4-Banana"); err == nil {
		t.Fatalf("parseModString(unknown token) = nil error, want error")
	}
}

func TestParseModStringAcceptsAliasSpellings(t *testing.T) {
	mask, err := parseModString("alt-ctrl-super")
	if err != nil {
		t.Fatalf("parseModString() error = %v", err)
	}
	want := uint16(xproto.ModMask1 | xproto.ModMaskControl | xproto.ModMask4)
	if mask != want {
		t.Fatalf("mask = %b, want %b", mask, want)
	}
}

func TestTokenizeArgsSplitsOnWhitespace(t *testing.T) {
	got := tokenizeArgs("dmenu_run -fn monospace")
	want := []string{"dmenu_run", "-fn", "monospace"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokenizeArgs() = %v, want %v", got, want)
	}
}

func TestTokenizeArgsHonorsQuotedSpaces(t *testing.T) {
	got := tokenizeArgs(`dmenu_run -p "run: "`)
	want := []string{"dmenu_run", "-p", "run: "}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokenizeArgs() = %v, want %v", got, want)
	}
}

func TestTokenizeArgsEmptyStringYieldsNoArgs(t *testing.T) {
	if got := tokenizeArgs(""); len(got) != 0 {
		t.Fatalf("tokenizeArgs(\"\") = %v, want empty", got)
	}
}

func TestResolveCommandSpawnTokenizesArg(t *testing.T) {
	cmd, arg, err := resolveCommand("spawn", "st -e vim")
	if err != nil {
		t.Fatalf("resolveCommand(spawn) error = %v", err)
	}
	if cmd == nil {
		t.Fatalf("resolveCommand(spawn) returned nil Cmd")
	}
	if arg != 0 {
		t.Fatalf("resolveCommand(spawn) arg = %d, want 0 (argv is closed over, not passed as arg)", arg)
	}
}

func TestResolveCommandSpawnRejectsEmptyArg(t *testing.T) {
	if _, _, err := resolveCommand("spawn", ""); err == nil {
		t.Fatalf("resolveCommand(spawn, \"\") = nil error, want error")
	}
}

func TestResolveCommandRejectsUnknownName(t *testing.T) {
	if _, _, err := resolveCommand("not_a_real_command", ""); err == nil {
		t.Fatalf("resolveCommand(unknown) = nil error, want error")
	}
}

func TestResolveCommandParsesDecimalArg(t *testing.T) {
	_, arg, err := resolveCommand("cycle_focus", "1")
	if err != nil {
		t.Fatalf("resolveCommand() error = %v", err)
	}
	if arg != 1 {
		t.Fatalf("arg = %d, want 1", arg)
	}
}

func TestResolveCommandRejectsNonDecimalArg(t *testing.T) {
	if _, _, err := resolveCommand("cycle_focus", "abc"); err == nil {
		t.Fatalf("resolveCommand(bad arg) = nil error, want error")
	}
}

func TestParseClickAreaKnownNames(t *testing.T) {
	for _, name := range []string{"root", "client", "tagbar", "layout_symbol", "status_text", "win_title", "clientbar_tab"} {
		if _, err := parseClickArea(name); err != nil {
			t.Fatalf("parseClickArea(%q) error = %v", name, err)
		}
	}
}

func TestParseClickAreaRejectsUnknown(t *testing.T) {
	if _, err := parseClickArea("bogus"); err == nil {
		t.Fatalf("parseClickArea(bogus) = nil error, want error")
	}
}
