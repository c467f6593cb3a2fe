package platform

// Package platform contains OS integration glue: filesystem helpers,
// the user's downloads directory and revealing files in the OS file manager.
