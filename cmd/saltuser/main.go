// Package main provides the saltuser CLI.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// execute runs the root command and detaches the store afterwards.
// Cobra skips post-run hooks when a command fails, so the detach
// happens here to cover both outcomes.
func execute() error {
	err := rootCmd.Execute()
	if cerr := closeStore(); err == nil {
		err = cerr
	}
	return err
}

// exitCode maps an error to the process exit code: system errors exit
// 2, everything else (bad arguments, unknown users, wrong credentials)
// exits 1.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var sys systemError
	if errors.As(err, &sys) {
		return exitSysError
	}
	return exitUserError
}
