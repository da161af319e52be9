package main

import (
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | APPEND | MUTATE"`
	Base    string `usage:"base URL, empty starts an embedded server"`
	N       int64  `usage:"number of rows or mutations"`
	Cols    int    `usage:"number of columns created before the test"`
	Workers int    `usage:"number of workers"`
}

func main() {

	c := Config{
		Test:    "ALL",
		Base:    "",
		N:       100_000,
		Cols:    8,
		Workers: 16,
	}
	goconfig.Read(&c)

	if c.Base == "" {
		start, stop := CreateServer(&c)
		defer stop()
		go start()
	}
	WaitReady(NewClient(), c.Base)

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestAppend(c)
		TestMutate(c)
	case "APPEND":
		TestAppend(c)
	case "MUTATE":
		TestMutate(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
