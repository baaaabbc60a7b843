//go:build !linux && !darwin

package sysinfo

import (
	"errors"
	"runtime"
)

func platformUname() (Uname, error) {
	return Uname{}, errors.New("uname not supported on " + runtime.GOOS)
}
