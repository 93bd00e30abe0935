package main

import "os"

// superuser reports whether the effective user is root.
func superuser(euid func() int) bool {
	return euid() == 0
}

// defaultEuid is os.Geteuid; it returns -1 where there is no such notion,
// which counts as unprivileged.
var defaultEuid = os.Geteuid
