// Package layout implements the three on-disk shapes a bxes log can take:
// a single concatenated file, a directory of four section files sharing one
// version header, and a single-entry DEFLATE zip archive wrapping the
// single-file stream.
package layout

// Split-layout file names. Each file is independently readable: a u32
// version header followed by that section's own length-prefixed content.
const (
	ValuesFileName   = "values.bxes"
	PairsFileName    = "kv_pairs.bxes"
	MetadataFileName = "metadata.bxes"
	VariantsFileName = "variants.bxes"
)

// DeflateLevel is the compression level used for the single zip entry in
// the archive layout.
const DeflateLevel = 8
