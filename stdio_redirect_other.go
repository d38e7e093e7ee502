//go:build !unix

package main

import "os"

// Panics still go to the original stderr here; only Go-level writes are redirected.
func redirectStderr(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stderr = f
	return nil
}
