// Command ingest chunks handbook exports and loads them into the configured
// retrieval backend.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
