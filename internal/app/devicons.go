package app

import (
	"os"
	"time"

	devicons "github.com/epilande/go-devicons"
)

// iconFileInfo lets go-devicons resolve an icon from a scanned entry
// without another stat call.
type iconFileInfo struct {
	name string
	size int64
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return i.size }

func (i iconFileInfo) Mode() os.FileMode { return 0o644 }

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return false }

func (i iconFileInfo) Sys() any { return nil }

func deviconForName(name string, size int64) string {
	if name == "" {
		return ""
	}
	return devicons.IconForInfo(iconFileInfo{name: name, size: size}).Icon
}

func iconWithSpace(icon string) string {
	if icon == "" {
		return ""
	}
	return icon + " "
}
