package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/shreekarashastry/doublespend/linecount"
)

func main() {
	ext := flag.String("ext", ".go", "File extension to count")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-ext .go] <path>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}
	total, err := linecount.Count(root, *ext)
	if err != nil {
		logrus.WithError(err).WithField("root", root).Fatal("Line count failed")
	}
	fmt.Println(total)
}
