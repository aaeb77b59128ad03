// Package export turns QEMU's symbol-export manifest into a Windows
// delay-link module definition.
//
// The input (plugins/qemu-plugins.symbols) is a linker version script
// body: symbol names terminated by semicolons inside a braced block. The
// output is a .def file: an EXPORTS section header followed by one bare
// symbol per line.
package export

import (
	"fmt"
	"os"
	"strings"
)

// SectionHeader is the first line of every synthesized export descriptor.
const SectionHeader = "EXPORTS"

// Filter deletes every '{', '}' and ';' from text. It is a pure
// character-class filter over the whole input, not line-based; all other
// characters, including line breaks, pass through unchanged.
func Filter(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '{', '}', ';':
			return -1
		default:
			return r
		}
	}, text)
}

// Synthesize reads the symbol manifest at manifestPath and writes the
// export descriptor to outputPath, overwriting any existing file.
//
// The resulting lines are not validated as export entries: a malformed
// manifest silently produces a malformed descriptor.
func Synthesize(manifestPath, outputPath string) error {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("reading symbol manifest %s: %w", manifestPath, err)
	}

	descriptor := fmt.Sprintf("%s\n%s", SectionHeader, Filter(string(data)))
	if err := os.WriteFile(outputPath, []byte(descriptor), 0o644); err != nil {
		return fmt.Errorf("writing export descriptor %s: %w", outputPath, err)
	}

	return nil
}
