package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PM-IDE/bxes/errs"
	"github.com/PM-IDE/bxes/iobin"
	"github.com/PM-IDE/bxes/model"
	"github.com/PM-IDE/bxes/reader"
	"github.com/PM-IDE/bxes/writectx"
	"github.com/PM-IDE/bxes/writer"
)

// WriteSplit encodes log as four sibling files in dir, each independently
// version-headed but sharing one interning context so their indices agree
// across files.
func WriteSplit(dir string, log *model.EventLog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrFailedToOpenFileForWriting, err)
	}

	ctx := writectx.New()
	writer.InternValues(ctx, log)
	writer.InternPairs(ctx, log)

	writeFile := func(name string, fn func(w *iobin.Writer) error) error {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrFailedToOpenFileForWriting, err)
		}
		defer f.Close()

		w := iobin.NewWriter(f)
		if err := w.WriteUint32(log.Version); err != nil {
			return err
		}

		return fn(w)
	}

	if err := writeFile(ValuesFileName, func(w *iobin.Writer) error {
		return writer.WriteValuesSection(w, ctx)
	}); err != nil {
		return err
	}

	if err := writeFile(PairsFileName, func(w *iobin.Writer) error {
		return writer.WritePairsSection(w, ctx)
	}); err != nil {
		return err
	}

	if err := writeFile(MetadataFileName, func(w *iobin.Writer) error {
		return writer.WriteMetadataSection(w, ctx, log.Metadata)
	}); err != nil {
		return err
	}

	return writeFile(VariantsFileName, func(w *iobin.Writer) error {
		return writer.WriteVariantsSection(w, ctx, log.Variants)
	})
}

// ReadSplit decodes a split-directory layout from dir, verifying all four
// files declare the same version.
func ReadSplit(dir string) (*model.EventLog, error) {
	var version uint32
	var haveVersion bool

	openChecked := func(name string) (*os.File, *iobin.Reader, error) {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", errs.ErrFailedToOpenFile, err)
		}

		r := iobin.NewReader(f)
		v, err := r.ReadUint32()
		if err != nil {
			f.Close()
			return nil, nil, err
		}

		if !haveVersion {
			version = v
			haveVersion = true
		} else if v != version {
			f.Close()
			return nil, nil, &errs.VersionMismatchError{File: name, Previous: version, Current: v}
		}

		return f, r, nil
	}

	valuesFile, valuesReader, err := openChecked(ValuesFileName)
	if err != nil {
		return nil, err
	}
	defer valuesFile.Close()

	values, err := reader.ReadValuesSection(valuesReader)
	if err != nil {
		return nil, err
	}

	pairsFile, pairsReader, err := openChecked(PairsFileName)
	if err != nil {
		return nil, err
	}
	defer pairsFile.Close()

	pairs, err := reader.ReadPairsSection(pairsReader, values)
	if err != nil {
		return nil, err
	}

	metadataFile, metadataReader, err := openChecked(MetadataFileName)
	if err != nil {
		return nil, err
	}
	defer metadataFile.Close()

	metadata, err := reader.ReadAttributesByIndex(metadataReader, pairs)
	if err != nil {
		return nil, err
	}

	variantsFile, variantsReader, err := openChecked(VariantsFileName)
	if err != nil {
		return nil, err
	}
	defer variantsFile.Close()

	variants, err := reader.ReadVariantsSection(variantsReader, values, pairs)
	if err != nil {
		return nil, err
	}

	return &model.EventLog{Version: version, Metadata: metadata, Variants: variants}, nil
}

