package upload

import "strconv"

// ErrorCode describes how an upload ended.
type ErrorCode int

const (
	OK        ErrorCode = 0 // Uploaded successfully.
	IniSize   ErrorCode = 1 // Exceeds the server's size limit.
	FormSize  ErrorCode = 2 // Exceeds the limit declared by the form.
	Partial   ErrorCode = 3 // Only partially received.
	NoFile    ErrorCode = 4 // Nothing was uploaded.
	NoTmpDir  ErrorCode = 6 // Missing temporary directory.
	CantWrite ErrorCode = 7 // Failed to write to disk.
	Extension ErrorCode = 8 // Stopped by an extension.
)

var codeNames = map[ErrorCode]string{
	OK:        "OK",
	IniSize:   "INI_SIZE",
	FormSize:  "FORM_SIZE",
	Partial:   "PARTIAL",
	NoFile:    "NO_FILE",
	NoTmpDir:  "NO_TMP_DIR",
	CantWrite: "CANT_WRITE",
	Extension: "EXTENSION",
}

func (c ErrorCode) IsValid() bool {
	_, ok := codeNames[c]
	return ok
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}
