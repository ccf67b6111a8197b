package module

import (
	"strings"
	"testing"

	phttp "legallens/internal/platform/net/http"
)

// Reloader is a tiny port our Ports() payloads can implement
type Reloader interface {
	Reload() int
}

type reloadImpl struct{ n int }

func (r reloadImpl) Reload() int { return r.n }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() PortSet           { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Reloader Reloader
		Size     int
	}
	type hidden struct {
		reloader Reloader
	}

	cases := []struct {
		name  string
		ports any
		want  int
		ok    bool
	}{
		{"nil ports", nil, 0, false},
		{"direct", Reloader(reloadImpl{n: 42}), 42, true},
		{"struct field", bundle{Reloader: reloadImpl{n: 7}}, 7, true},
		{"pointer to struct", &bundle{Reloader: reloadImpl{n: 8}}, 8, true},
		{"nil pointer", (*bundle)(nil), 0, false},
		{"unexported field ignored", hidden{reloader: reloadImpl{n: 1}}, 0, false},
		{"primitive", 123, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[Reloader](fakeModule{name: c.name, ports: c.ports})
			if ok != c.ok {
				t.Fatalf("ok = %v want %v", ok, c.ok)
			}
			if ok && got.Reload() != c.want {
				t.Fatalf("Reload = %d want %d", got.Reload(), c.want)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "ok", ports: Reloader(reloadImpl{n: 99})}
	if got := MustPortsOf[Reloader](m); got.Reload() != 99 {
		t.Fatalf("unexpected value %d", got.Reload())
	}

	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "catalog") || !strings.Contains(msg, "requested port not found") {
			t.Fatalf("panic message should name the module, got %q", msg)
		}
	}()
	_ = MustPortsOf[Reloader](fakeModule{name: "catalog"})
}
