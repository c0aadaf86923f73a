package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	WarningLog *log.Logger
	InfoLog    *log.Logger
	ErrorLog   *log.Logger
)

var logFileName = filepath.Join(os.TempDir(), "rangeline.log")

var globalLogFile *os.File

// Initialize should be called once at the beginning of the program to set up logging.
// defer Close() after calling this function. If quiet is set, Close does not print the
// log file location.
func Initialize(quiet bool) {
	quietClose = quiet

	f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		// Logging must never stop the widget from running.
		fmt.Fprintf(os.Stderr, "could not open log file: %s\n", err)
		discardAll()
		InitDebug()
		return
	}

	InfoLog = log.New(f, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)

	globalLogFile = f
	InitDebug()
}

var quietClose bool

func Close() {
	CloseDebug()
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	if !quietClose {
		fmt.Println("wrote logs to " + logFileName)
	}
}

// discardAll points every logger at io.Discard so callers never see a nil logger.
func discardAll() {
	InfoLog = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog = log.New(io.Discard, "", 0)
}

func init() {
	// Packages log before main calls Initialize in tests.
	discardAll()
}
