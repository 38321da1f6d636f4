package main

// VERSION is overridden at build time via -ldflags.
var VERSION = "dev"
