// Package bxes implements the binary Compressed/Compact XES event log
// format: a small set of on-disk layouts for a process-mining event log,
// built around an interning codec that discovers each distinct attribute
// value and (key,value) pair once and references it by index everywhere
// else.
//
// Three layouts are supported, all sharing the same four logical sections
// (values, pairs, metadata, variants) and wire-level value encoding:
//
//   - Single file: one concatenated stream. See WriteSingleFile/ReadSingleFile.
//   - Split directory: four sibling files, one per section, sharing a
//     version header. See WriteSplit/ReadSplit.
//   - Archive: the single-file stream wrapped as the lone entry of a
//     DEFLATE zip archive. See WriteArchive/ReadArchive.
//
// Example:
//
//	log := &model.EventLog{Version: 1, Variants: []model.TraceVariant{...}}
//	if err := bxes.WriteSingleFile("log.bxes", log); err != nil {
//		// handle err
//	}
//	decoded, err := bxes.ReadSingleFile("log.bxes")
package bxes

import (
	"io"

	"github.com/PM-IDE/bxes/layout"
	"github.com/PM-IDE/bxes/model"
	"github.com/PM-IDE/bxes/reader"
	"github.com/PM-IDE/bxes/writer"
)

// WriteSingleFile encodes log to path as one concatenated bxes stream.
//
// Parameters:
//   - path: destination file path, created or truncated.
//   - log: the event log to encode.
//
// Returns an error if the file cannot be created or a write fails partway
// through, in which case path may contain a truncated, unusable stream.
func WriteSingleFile(path string, log *model.EventLog) error {
	return layout.WriteSingleFile(path, log)
}

// ReadSingleFile decodes a single-file bxes log from path.
func ReadSingleFile(path string) (*model.EventLog, error) {
	return layout.ReadSingleFile(path)
}

// WriteSplit encodes log as a directory of four section files at dir,
// creating dir if it does not exist.
func WriteSplit(dir string, log *model.EventLog) error {
	return layout.WriteSplit(dir, log)
}

// ReadSplit decodes a split-directory bxes log from dir. It returns a
// VersionMismatchError (see package errs) if the four section files
// disagree on their version header.
func ReadSplit(dir string) (*model.EventLog, error) {
	return layout.ReadSplit(dir)
}

// WriteArchive encodes log and wraps it as the single entry of a DEFLATE
// zip archive at path.
func WriteArchive(path string, log *model.EventLog) error {
	return layout.WriteArchive(path, log)
}

// ReadArchive extracts and decodes a bxes log from a zip archive at path.
// The archive must contain exactly one file.
func ReadArchive(path string) (*model.EventLog, error) {
	return layout.ReadArchive(path)
}

// Encode writes log's four sections to dst without any layout-specific
// version header or framing. Most callers want WriteSingleFile,
// WriteSplit, or WriteArchive instead; Encode is exposed for callers
// embedding the bxes stream in a larger container of their own.
func Encode(dst io.WriteSeeker, log *model.EventLog) error {
	return writer.Encode(dst, log)
}

// Decode reads a bare four-section bxes stream from src. The returned
// log's Version field is left at its zero value; callers that manage their
// own version header should set it themselves.
func Decode(src io.Reader) (*model.EventLog, error) {
	return reader.Decode(src)
}
