// SPDX-License-Identifier: Apache-2.0

// Package client implements the command-line front end of go-note-vault.
//
// The [App] type dispatches a single subcommand per invocation (list, show,
// create, encrypt, decrypt, genpass, ...) against the service layer and
// writes human-readable output to its configured writer. It holds no state
// between invocations; all persistence lives in the store.
package client
