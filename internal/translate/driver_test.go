package translate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tuanngocfun/tinylang/internal/translate"
)

func TestTranslateFile(t *testing.T) {
	t.Parallel()

	t.Run("writesTranslationNextToSource", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "prog.txt")
		assert.NoError(t, os.WriteFile(src, []byte("BEGIN\nPRINT \"hi\"\nEND\n"), 0o644))

		assert.NoError(t, translate.TranslateFile(src))

		out, err := os.ReadFile(filepath.Join(dir, "prog.cpp"))
		assert.NoError(t, err)
		assert.Equal(t, header+"\tcout << \"hi\";\n"+footer, string(out))
	})

	t.Run("overwritesStaleOutput", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "prog.txt")
		assert.NoError(t, os.WriteFile(src, []byte("BEGIN\nEND\n"), 0o644))
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "prog.cpp"), []byte("stale"), 0o644))

		assert.NoError(t, translate.TranslateFile(src))

		out, err := os.ReadFile(filepath.Join(dir, "prog.cpp"))
		assert.NoError(t, err)
		assert.Equal(t, header+footer, string(out))
	})

	t.Run("rejectedProgramLeavesNoArtifact", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "prog.txt")
		assert.NoError(t, os.WriteFile(src, []byte("BEGIN\nPRINT x\nEND\n"), 0o644))

		err := translate.TranslateFile(src)
		assert.EqualError(t, err, "Syntax Error: Attempt to print an undeclared identifier")

		_, err = os.Stat(filepath.Join(dir, "prog.cpp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missingFile", func(t *testing.T) {
		t.Parallel()

		err := translate.TranslateFile(filepath.Join(t.TempDir(), "absent.txt"))
		assert.EqualError(t, err, "invalid file path")
	})

	t.Run("pathTooShort", func(t *testing.T) {
		t.Parallel()

		err := translate.TranslateFile("a")
		assert.EqualError(t, err, "invalid file path")
	})

	t.Run("wrongExtension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "prog.tny")
		assert.NoError(t, os.WriteFile(src, []byte("BEGIN\nEND\n"), 0o644))

		err := translate.TranslateFile(src)
		assert.EqualError(t, err, "invalid file extension")

		_, err = os.Stat(filepath.Join(dir, "prog.cpp"))
		assert.True(t, os.IsNotExist(err))
	})
}
