package translate

import (
	"strings"
	"testing"

	"github.com/picrasm/picrasm/pkg/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reverse(t *testing.T, source string, locale isa.Locale) string {
	t.Helper()

	result, err := testEngine(t).Reverse(source, locale)
	require.NoError(t, err)

	return result
}

func TestReverseAssignmentSyntax(t *testing.T) {
	tests := [][2]string{
		{"    MOVLW 0x05        ; load mask", "    wreg = 0x05        ; load mask"},
		{"LOOP: MOVWF PORTB, ACCESS", "LOOP: PORTB = wreg, ACCESS"},
		// Destination receives source: MOVFF src, dest becomes dest = src.
		{"    MOVFF TEMP, PORTA", "    PORTA = TEMP"},
	}

	for _, test := range tests {
		assert.Equal(t, test[1], reverse(t, test[0], isa.English), "input %q", test[0])
	}
}

func TestReverseAssignmentWithoutQualifier(t *testing.T) {
	assert.Equal(t, "    PORTB = wreg", reverse(t, "    MOVWF PORTB", isa.English))
}

func TestReverseAssignmentLabelAndComment(t *testing.T) {
	assert.Equal(t,
		"INIT: TRISB = wreg ; all outputs",
		reverse(t, "INIT: MOVWF TRISB ; all outputs", isa.English))
}

func TestReverseAssignmentIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "    wreg = 0x3F", reverse(t, "    movlw 0x3F", isa.English))
}

func TestReverseAssignmentAppliesToSlovenianToo(t *testing.T) {
	// The structural rewrite does not depend on the target language.
	assert.Equal(t, "    wreg = 0x05", reverse(t, "    MOVLW 0x05", isa.Slovenian))
}

func TestReverseMalformedMoveFallsBackToSubstitution(t *testing.T) {
	// MOVFF with a single operand has no assignment shape; the mnemonic is
	// still translated generically.
	assert.Equal(t,
		"    move_f_to_f TEMP",
		reverse(t, "    MOVFF TEMP", isa.English))
}

func TestReverseGenericSubstitution(t *testing.T) {
	tests := [][2]string{
		{"    ADDWF PORTB, W", "    add_w_to_f PORTB, W"},
		{"    BTFSC STATUS, 2", "    bit_test_f_skip_if_clear STATUS, 2"},
		{"HERE: GOTO THERE", "HERE: goto_address THERE"},
		{"    ADDULNK 0x10", "    add_literal_to_fsr2_and_return 0x10"},
		{"    SLEEP", "    enter_sleep_mode"},
		{"    RETLW 0x00 ; done", "    return_with_literal_in_w 0x00 ; done"},
	}

	for _, test := range tests {
		assert.Equal(t, test[1], reverse(t, test[0], isa.English), "input %q", test[0])
	}
}

func TestReverseSlovenianNames(t *testing.T) {
	assert.Equal(t,
		"    pristej_w_k_f PORTB, W",
		reverse(t, "    ADDWF PORTB, W", isa.Slovenian))
}

func TestReverseTableInstructionsStayDistinct(t *testing.T) {
	tests := [][2]string{
		{"    TBLRD*", "    table_read"},
		{"    TBLRD*+", "    table_read_post_increment"},
		{"    TBLRD*-", "    table_read_post_decrement"},
		{"    TBLRD+*", "    table_read_pre_increment"},
		{"    TBLWT*+", "    table_write_post_increment"},
	}

	for _, test := range tests {
		assert.Equal(t, test[1], reverse(t, test[0], isa.English), "input %q", test[0])
	}
}

func TestReverseCommentAndDirectiveLinesAreInvariant(t *testing.T) {
	lines := []string{
		"; MOVLW inside a comment line",
		"",
		"START: ORG 0x0000",
		"#define LED PORTB, 0",
		"    LIST P=18F452",
	}

	for _, line := range lines {
		assert.Equal(t, line, reverse(t, line, isa.English), "line %q", line)
	}
}

func TestReverseUnknownMnemonicsPassThrough(t *testing.T) {
	line := "    FROBNICATE PORTB"
	assert.Equal(t, line, reverse(t, line, isa.English))
}

func TestReverseRequiresConcreteLocale(t *testing.T) {
	_, err := testEngine(t).Reverse("    NOP", isa.AnyLocale)
	assert.ErrorIs(t, err, isa.ErrUnknownLocale)
}

func TestRoundTripOutsideMoveClass(t *testing.T) {
	// Every canonical readable name survives forward + reverse translation,
	// except the move class which reverses into assignment syntax.
	engine := testEngine(t)

	reverseMap, err := engine.Tables().Reverse(isa.English)
	require.NoError(t, err)

	for mnemonic, name := range reverseMap {
		if mnemonic == "MOVLW" || mnemonic == "MOVWF" || mnemonic == "MOVFF" {
			continue
		}

		line := "    " + name + " FOO, 1"

		translated, err := engine.Forward(line, isa.English, isa.AnyArchitecture)
		require.NoError(t, err)
		assert.Equal(t, "    "+mnemonic+" FOO, 1", translated, "forward of %q", name)

		restored, err := engine.Reverse(translated, isa.English)
		require.NoError(t, err)
		assert.Equal(t, line, restored, "round trip of %q", name)
	}
}

func TestRoundTripTableFamily(t *testing.T) {
	source := strings.Join([]string{
		"    table_read",
		"    table_read_post_increment",
		"    table_read_post_decrement",
		"    table_read_pre_increment",
	}, "\n")

	engine := testEngine(t)

	translated, err := engine.Forward(source, isa.English, isa.PIC18)
	require.NoError(t, err)
	assert.Equal(t, "    TBLRD*\n    TBLRD*+\n    TBLRD*-\n    TBLRD+*", translated)

	restored, err := engine.Reverse(translated, isa.English)
	require.NoError(t, err)
	assert.Equal(t, source, restored)
}

func TestReverseThenForwardIsNotAnInverseForMoves(t *testing.T) {
	// Intentional asymmetry: assignment syntax only exists in the reverse
	// direction, so the forward pass treats it as plain text.
	engine := testEngine(t)

	readable, err := engine.Reverse("    MOVLW 0x05", isa.English)
	require.NoError(t, err)
	assert.Equal(t, "    wreg = 0x05", readable)

	back, err := engine.Forward(readable, isa.AnyLocale, isa.AnyArchitecture)
	require.NoError(t, err)
	assert.Equal(t, "    wreg = 0x05", back)
}
