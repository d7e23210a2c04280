package main

// Point dimensions accepted on the command line
const (
	lineDims  = 2 // x, y
	planeDims = 3 // x, y, z
)

// Parsing constants
const (
	valueSeparator = ","
	float32Bits    = 32
	csvComment     = '#'
)

// Exit codes
const (
	exitFitFailed = 1
	exitUsage     = 2
)
