// Package platform supplies the host label shown in the chat header.
package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/host"
)

// Provider returns an environment-specific label for the header bar.
type Provider interface {
	Name() string
}

// Static is a Provider with a fixed label.
type Static string

// Name implements Provider.
func (s Static) Name() string { return string(s) }

// hostInfoFunc is swapped in tests.
var hostInfoFunc = host.InfoWithContext

// Host is a Provider computed once from host information.
type Host struct {
	name string
}

// Name implements Provider.
func (h *Host) Name() string { return h.name }

// Detect builds a label like "ubuntu 22.04 (linux/amd64)" from host info.
// When host info is unavailable it falls back to "linux/amd64".
func Detect(ctx context.Context) *Host {
	arch := runtime.GOOS + "/" + runtime.GOARCH
	info, err := hostInfoFunc(ctx)
	if err != nil || info == nil {
		return &Host{name: arch}
	}
	label := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if label == "" {
		return &Host{name: arch}
	}
	return &Host{name: fmt.Sprintf("%s (%s)", label, arch)}
}

// Resolve returns Static(name) when name is set, otherwise a detected Host.
func Resolve(ctx context.Context, name string) Provider {
	if strings.TrimSpace(name) != "" {
		return Static(name)
	}
	return Detect(ctx)
}
