package patch

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = `/* QEMU Plugin API */
#include <glib.h>
#include <inttypes.h>

typedef uint64_t qemu_plugin_id_t;

void qemu_plugin_register_vcpu_mem_cb(void);
`

func TestPatch_RemovesGlibInclude(t *testing.T) {
	result := Patch(sampleHeader)

	assert.True(t, result.IncludeRemoved)
	assert.NotContains(t, result.Text, "#include <glib.h>")
	assert.Contains(t, result.Text, "#include <inttypes.h>", "other includes are untouched")
}

func TestPatch_PrependsStandinsBeforeBody(t *testing.T) {
	result := Patch(sampleHeader)

	gArray := strings.Index(result.Text, "typedef struct GArray")
	gByteArray := strings.Index(result.Text, "typedef struct GByteArray")
	body := strings.Index(result.Text, "QEMU Plugin API")

	require.GreaterOrEqual(t, gArray, 0)
	require.Greater(t, gByteArray, gArray, "GByteArray stand-in follows GArray")
	require.Greater(t, body, gByteArray, "original body follows both stand-ins")
}

func TestPatch_StandinFieldLayout(t *testing.T) {
	result := Patch(sampleHeader)

	// Pointer-sized data field then unsigned length, matching the layout
	// generated code reads.
	assert.Contains(t, result.Text, "typedef struct GArray { char *data; unsigned int len; } GArray;")
	assert.Contains(t, result.Text, "typedef struct GByteArray { unsigned char *data; unsigned int len; } GByteArray;")
}

func TestPatch_IdempotentRemoval(t *testing.T) {
	// A header with no glib include comes back with stand-ins prepended
	// and is otherwise unchanged.
	header := "typedef int qemu_plugin_id_t;\n"
	result := Patch(header)

	assert.False(t, result.IncludeRemoved)
	assert.True(t, strings.HasSuffix(result.Text, header+"\n"), "body preserved verbatim")

	// Patching the already include-free body again removes nothing more.
	again := Patch(header)
	assert.Equal(t, result.Text, again.Text)
}

func TestPatch_RemovesEveryOccurrence(t *testing.T) {
	header := "#include <glib.h>\nint x;\n#include <glib.h>\n"
	result := Patch(header)

	assert.NotContains(t, result.Text, "#include <glib.h>")
	assert.Contains(t, result.Text, "int x;")
}

func TestPatchStrict_MissingInclude(t *testing.T) {
	_, err := PatchStrict("typedef int qemu_plugin_id_t;\n")

	var missing *MissingIncludeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "#include <glib.h>", missing.Include)
}

func TestPatchStrict_Success(t *testing.T) {
	text, err := PatchStrict(sampleHeader)
	require.NoError(t, err)
	assert.Equal(t, Patch(sampleHeader).Text, text)
}

func TestPatch_Golden(t *testing.T) {
	result := Patch(sampleHeader)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "patched_header", []byte(result.Text))
}
