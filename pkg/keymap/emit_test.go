package keymap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/tablegen/pkg/keymap"
)

func TestTableEntries(t *testing.T) {
	t.Parallel()

	tbl := parseString(t, "Escape, 0x01\n", 0xFF)

	got := entryLines(keymap.TableEntries(tbl, keymap.DefaultQualifier))
	assert.Len(t, got, keymap.TableSize)
	assert.Equal(t, "key_sym::e::unknown,", got[0])
	assert.Equal(t, "key_sym::e::Escape,", got[1])
	assert.Equal(t, "key_sym::e::unknown,", got[keymap.TableSize-1])
}

func TestEnumEmitters(t *testing.T) {
	t.Parallel()

	u := keymap.Universe{"Escape", "Tab", "unknown"}

	assert.Equal(t, "\tEscape,\n\tTab,\n\tunknown,\n", keymap.EnumMembers(u))
	assert.Equal(t, "3", keymap.EnumLength(u))
	assert.Equal(t,
		"\t{ key_sym::e::Escape, 0 },\n\t{ key_sym::e::Tab, 0 },\n\t{ key_sym::e::unknown, 0 },\n",
		keymap.LookupTableEntries(u, keymap.DefaultQualifier, keymap.DefaultExternalCode),
	)
	assert.Equal(t,
		"\t{ Escape, KEY_TBD },\n\t{ Tab, KEY_TBD },\n\t{ unknown, KEY_TBD },\n",
		keymap.LookupTableEntries(u, "", "KEY_TBD"),
	)
}

func TestDefaultTemplates(t *testing.T) {
	t.Parallel()

	assert.Contains(t, keymap.DefaultTableTemplate, "{table_name}")
	assert.Contains(t, keymap.DefaultTableTemplate, "{table_entries}")
	assert.Contains(t, keymap.DefaultEnumTemplate, "{enum_members}")
	assert.Contains(t, keymap.DefaultEnumTemplate, "{lookup_table_entries}")
}

// entryLines splits rendered entries into lines.
func entryLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
