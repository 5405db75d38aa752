package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tuanngocfun/tinylang/internal/translate"
)

func main() {
	tokens := flag.Bool("tokens", false, "print the token stream instead of translating")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: tinyc [-tokens] file.txt [file.txt ...]")
		os.Exit(2)
	}

	failed := false
	for _, path := range paths {
		var err error
		if *tokens {
			err = dumpTokens(path)
		} else {
			err = translate.TranslateFile(path)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dumpTokens(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for tok, err := range translate.NewLexer(f).Tokens() {
		if err != nil {
			return err
		}
		fmt.Println(tok)
	}
	return nil
}
