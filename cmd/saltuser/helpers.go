// Shared helpers for saltuser CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/saltastro/saltuser/pkg/saltuser"
	"github.com/saltastro/saltuser/pkg/types"
)

// systemError marks a failure of the machinery around the request:
// configuration loading, database attachment, query execution. main
// maps it to exitSysError; unmarked errors exit with exitUserError.
type systemError struct {
	err error
}

func (e systemError) Error() string { return e.err.Error() }
func (e systemError) Unwrap() error { return e.err }

// sysErr marks err as a system error.
func sysErr(err error) error {
	return systemError{err: err}
}

// classify marks err as a system error unless the user triggered it
// with bad input (unknown user or block, wrong credentials).
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, types.ErrUserNotFound) ||
		errors.Is(err, types.ErrBlockNotFound) ||
		errors.Is(err, types.ErrInvalidCredentials) {
		return err
	}
	return sysErr(err)
}

// findUser resolves a username to a User with a CLI-friendly error.
func findUser(username string) (*saltuser.User, error) {
	u, err := saltuser.FindByUsername(username, store)
	if err != nil {
		return nil, classify(fmt.Errorf("user %q: %w", username, err))
	}
	return u, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysErr(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Println(string(output))
	return nil
}

// yesNo renders a permission answer.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
