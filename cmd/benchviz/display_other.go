//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package main

func hasDisplay() bool { return true }
