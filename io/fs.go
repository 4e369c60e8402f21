package io

import (
	"io/fs"
)

// OpenRom reads the named ROM image from a file system.
func OpenRom(fsys fs.FS, name string) (rom *Rom, err error) {
	inf, err := fsys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	rom, err = ReadRom(inf)
	if err != nil {
		err = &fs.PathError{Op: "read", Path: name, Err: err}
		return
	}

	rom.Name = name
	return
}
