package main

// Sample format constants
const (
	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	midUint8 = 128.0
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// CLI defaults
const (
	minRequiredArgs   = 1
	unusedChannel     = -1
	defaultRefChannel = 0
	defaultTarget     = 1
)

// Exit codes
const (
	exitFailed = 1
	exitUsage  = 2
)
