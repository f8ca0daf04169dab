package textbookrsa

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Debugging. Set RSA_DEBUG to turn on topic logging, and RSA_DUMP as well to
// spew full key material.

type logTopic string

const (
	dKeys    logTopic = "KEYS"
	dCipher  logTopic = "CIPH"
	dWarning logTopic = "WARN"
	dDump    logTopic = "DUMP"
)

var (
	debugStart = time.Now()
	debug      = os.Getenv("RSA_DEBUG") != ""
	dumpAll    = os.Getenv("RSA_DUMP") != ""
)

func IsDebug() bool {
	return debug
}

func IsDump() bool {
	return dumpAll
}

func logf(topic logTopic, header string, format string, a ...interface{}) {
	if !IsDebug() {
		return
	}
	elapsed := time.Since(debugStart).Microseconds()
	prefix := fmt.Sprintf("%09d %v [%s] ", elapsed, topic, header)
	log.Printf(prefix+format, a...)
}

// assertf only fires in debug mode; production paths return typed errors.
func assertf(condition bool, header string, format string, a ...interface{}) {
	if IsDebug() && !condition {
		panic(fmt.Sprintf("["+header+"] "+format, a...))
	}
}
