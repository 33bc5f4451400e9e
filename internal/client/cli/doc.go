// Package cli provides the interactive amumal command-line client.
//
// It wires configuration, local storage and the backend API into a REPL that
// mirrors the pages of the web client: login and signup, the cursor-paginated
// feed, the post detail view with likes and comments, and the profile,
// password and account screens.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
