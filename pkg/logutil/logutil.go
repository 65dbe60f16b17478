// Package logutil provides opt-in logging for debugging. Logging is off by
// default; it is turned on globally with [SetOutput] or [SetOutputFile].
package logutil

import (
	"io"
	"log"
	"os"
)

var (
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix, registered to follow future
// calls to [SetOutput] and [SetOutputFile].
func GetLogger(prefix string) *log.Logger {
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers to the given writer.
func SetOutput(newOut io.Writer) {
	closeOutFile()
	setOutput(newOut)
}

// SetOutputFile redirects the output of all loggers to the named file, opened
// for appending. An empty name discards all output.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	closeOutFile()
	outFile = file
	setOutput(file)
	return nil
}

func setOutput(newOut io.Writer) {
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}
