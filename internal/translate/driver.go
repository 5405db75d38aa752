package translate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	sourceExt = ".txt"
	targetExt = ".cpp"
)

// TranslateFile translates the TINY program at path into a C++ file next to
// it, swapping the source extension for ".cpp". On any failure the output
// file is removed, so no partial artifact survives a rejected program.
func TranslateFile(path string) error {
	if len(path) < len(sourceExt) {
		return errors.New("invalid file path")
	}
	in, err := os.Open(path)
	if err != nil {
		return errors.New("invalid file path")
	}
	defer in.Close()

	if filepath.Ext(path) != sourceExt {
		return errors.New("invalid file extension")
	}

	outPath := strings.TrimSuffix(path, sourceExt) + targetExt
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if err := Translate(in, out); err != nil {
		out.Close()
		os.Remove(outPath)
		return err
	}
	return out.Close()
}
