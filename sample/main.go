package main

import (
	"context"
	"os"

	"github.com/canhlinh/batchdl"
)

func main() {
	urls := []string{
		"https://www.gutenberg.org/cache/epub/1342/pg1342.txt",
		"https://www.gutenberg.org/cache/epub/84/pg84.txt?download=1",
		"https://example.com/",
	}

	dir, err := os.MkdirTemp("", "batchdl")
	if err != nil {
		panic(err)
	}

	if _, err := batchdl.Run(context.Background(), urls, dir, 2); err != nil {
		panic(err)
	}
}
