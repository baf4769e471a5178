package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/services/logger"
)

func main() {
	conf := core.NewConfig()

	// silent unless --verbose
	std := log.New(io.Discard, "ADMIN : ", log.LstdFlags|log.Lmicroseconds)
	logger := logsvc.NewRollbarLogger(std, conf)

	cli := &commandLine{
		conf:   conf,
		logger: logger,
		std:    std,
		in:     os.Stdin,
		out:    os.Stdout,
	}
	err := cli.run(os.Args[1:])
	logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		os.Exit(1)
	}
}
