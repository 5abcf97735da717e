package wakatime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	hb := func(age time.Duration, mutate func(*Heartbeat)) *Heartbeat {
		h := &Heartbeat{Time: float64(now.Add(-age).Unix())}
		if mutate != nil {
			mutate(h)
		}
		return h
	}

	tests := []struct {
		name string
		hb   *Heartbeat
		want bool
	}{
		{
			name: "no heartbeat",
			hb:   nil,
			want: false,
		},
		{
			name: "fresh editor match",
			hb:   hb(30*time.Second, func(h *Heartbeat) { h.Editor = "Cursor" }),
			want: true,
		},
		{
			name: "editor match but five minutes old",
			hb:   hb(5*time.Minute, func(h *Heartbeat) { h.Editor = "Cursor" }),
			want: false,
		},
		{
			name: "exactly at the two minute boundary",
			hb:   hb(2*time.Minute, func(h *Heartbeat) { h.Editor = "Cursor" }),
			want: false,
		},
		{
			name: "client field carries the editor name",
			hb:   hb(10*time.Second, func(h *Heartbeat) { h.Client = "cursor" }),
			want: true,
		},
		{
			name: "legacy editor_name field",
			hb:   hb(10*time.Second, func(h *Heartbeat) { h.EditorName = "Cursor" }),
			want: true,
		},
		{
			name: "fresh project match without editor field",
			hb:   hb(10*time.Second, func(h *Heartbeat) { h.Project = "my-portfolio" }),
			want: true,
		},
		{
			name: "project matches editor name",
			hb:   hb(10*time.Second, func(h *Heartbeat) { h.Project = "cursor-playground" }),
			want: true,
		},
		{
			name: "fresh heartbeat with nothing matching",
			hb:   hb(10*time.Second, func(h *Heartbeat) { h.Editor = "vim"; h.Project = "dotfiles" }),
			want: false,
		},
		{
			name: "project match ten minutes old fails the recency gate",
			hb:   hb(10*time.Minute, func(h *Heartbeat) { h.Project = "my-portfolio" }),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsActive(tt.hb, "Cursor", "my-portfolio", now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsActiveWithoutConfiguredProject(t *testing.T) {
	now := time.Now()
	h := &Heartbeat{Time: float64(now.Unix()), Project: "my-portfolio"}
	assert.False(t, IsActive(h, "Cursor", "", now))
}
