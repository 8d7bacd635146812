package basedir

import (
	"slices"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	locs, err := Resolve(MapEnvironment(nil, "/", 1000))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if locs.Home != "/" {
		t.Errorf("Home = %q, want /", locs.Home)
	}
	if locs.DataHome != "/.local/share" {
		t.Errorf("DataHome = %q, want /.local/share", locs.DataHome)
	}
	if locs.ConfigHome != "/.config" {
		t.Errorf("ConfigHome = %q, want /.config", locs.ConfigHome)
	}
	if locs.StateHome != "/.local/state" {
		t.Errorf("StateHome = %q, want /.local/state", locs.StateHome)
	}
	if locs.CacheHome != "/.cache" {
		t.Errorf("CacheHome = %q, want /.cache", locs.CacheHome)
	}
	if want := []string{"/usr/local/share", "/usr/share"}; !slices.Equal(locs.DataDirs, want) {
		t.Errorf("DataDirs = %v, want %v", locs.DataDirs, want)
	}
	if want := []string{"/etc/xdg"}; !slices.Equal(locs.ConfigDirs, want) {
		t.Errorf("ConfigDirs = %v, want %v", locs.ConfigDirs, want)
	}
	if locs.RuntimeDir != "/tmp/user-1000" {
		t.Errorf("RuntimeDir = %q, want /tmp/user-1000", locs.RuntimeDir)
	}
}

func TestResolveOverrides(t *testing.T) {
	vars := map[string]string{
		"XDG_DATA_HOME":   "/",
		"XDG_CONFIG_HOME": "/",
		"XDG_STATE_HOME":  "/",
		"XDG_CACHE_HOME":  "/",
		"XDG_DATA_DIRS":   "/",
		"XDG_CONFIG_DIRS": "/",
		"XDG_RUNTIME_DIR": "/",
	}

	locs, err := Resolve(MapEnvironment(vars, "/", 1000))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	for name, got := range map[string]string{
		"DataHome":   locs.DataHome,
		"ConfigHome": locs.ConfigHome,
		"StateHome":  locs.StateHome,
		"CacheHome":  locs.CacheHome,
		"RuntimeDir": locs.RuntimeDir,
	} {
		if got != "/" {
			t.Errorf("%s = %q, want /", name, got)
		}
	}
	if want := []string{"/"}; !slices.Equal(locs.DataDirs, want) {
		t.Errorf("DataDirs = %v, want %v", locs.DataDirs, want)
	}
	if want := []string{"/"}; !slices.Equal(locs.ConfigDirs, want) {
		t.Errorf("ConfigDirs = %v, want %v", locs.ConfigDirs, want)
	}
}

func TestResolveNoHome(t *testing.T) {
	_, err := Resolve(MapEnvironment(nil, "", 0))

	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !IsKind(err, MissingConfiguration) {
		t.Errorf("error kind = %v, want %v", err, MissingConfiguration)
	}
}

func TestResolveMalformedDirsList(t *testing.T) {
	// An empty segment anywhere in a list variable aborts resolution.
	vars := map[string]string{"XDG_DATA_DIRS": "/a::/b"}

	_, err := Resolve(MapEnvironment(vars, "/", 1000))

	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !IsKind(err, MissingConfiguration) {
		t.Errorf("error kind = %v, want %v", err, MissingConfiguration)
	}
}

func TestSearchPathOrder(t *testing.T) {
	locs, err := Resolve(MapEnvironment(map[string]string{
		"XDG_DATA_HOME": "/data/home",
		"XDG_DATA_DIRS": "/data/one:/data/two",
	}, "/", 1000))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := []string{"/data/home", "/data/one", "/data/two"}
	if got := locs.DataSearchPath(); !slices.Equal(got, want) {
		t.Errorf("DataSearchPath() = %v, want %v", got, want)
	}
}

func TestDefaultMatchesLiveEnvironment(t *testing.T) {
	got, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	want, err := Resolve(OSEnvironment())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got.DataHome != want.DataHome || got.ConfigHome != want.ConfigHome {
		t.Errorf("Default() = %+v, want %+v", got, want)
	}
}
