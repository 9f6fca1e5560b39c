package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/shirou/gopsutil/host"
	"github.com/stretchr/testify/assert"
)

func stubHostInfo(t *testing.T, info *host.InfoStat, err error) {
	t.Helper()
	prev := hostInfoFunc
	hostInfoFunc = func(context.Context) (*host.InfoStat, error) { return info, err }
	t.Cleanup(func() { hostInfoFunc = prev })
}

func TestStatic(t *testing.T) {
	var p Provider = Static("Desktop")
	assert.Equal(t, "Desktop", p.Name())
}

func TestDetect(t *testing.T) {
	arch := runtime.GOOS + "/" + runtime.GOARCH
	tests := []struct {
		name string
		info *host.InfoStat
		err  error
		want string
	}{
		{
			name: "platform and version",
			info: &host.InfoStat{Platform: "ubuntu", PlatformVersion: "22.04"},
			want: "ubuntu 22.04 (" + arch + ")",
		},
		{
			name: "platform only",
			info: &host.InfoStat{Platform: "darwin"},
			want: "darwin (" + arch + ")",
		},
		{name: "empty info", info: &host.InfoStat{}, want: arch},
		{name: "error", err: errors.New("no host info"), want: arch},
		{name: "nil info", want: arch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubHostInfo(t, tt.info, tt.err)
			assert.Equal(t, tt.want, Detect(context.Background()).Name())
		})
	}
}

func TestResolve(t *testing.T) {
	stubHostInfo(t, &host.InfoStat{Platform: "fedora", PlatformVersion: "40"}, nil)

	assert.Equal(t, "Android 34", Resolve(context.Background(), "Android 34").Name())
	assert.Contains(t, Resolve(context.Background(), "  ").Name(), "fedora 40")
}
