package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"secure-app-server/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  *[]string
}

func (f fakeFeature) Name() string   { return f.name }
func (f fakeFeature) IsEnabled() bool { return f.enabled }
func (f fakeFeature) Load(app fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	*f.loaded = append(*f.loaded, f.name)
	app.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	var loaded []string
	mgr := loader.NewManager()
	mgr.Register(
		fakeFeature{name: "first", enabled: true, loaded: &loaded},
		fakeFeature{name: "disabled", enabled: false, loaded: &loaded},
		fakeFeature{name: "second", enabled: true, loaded: &loaded},
	)

	app := fiber.New()
	require.NoError(t, mgr.LoadAll(app))
	assert.Equal(t, []string{"first", "second"}, loaded)

	resp, err := app.Test(httptest.NewRequest("GET", "/second", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/disabled", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	var loaded []string
	boom := errors.New("boom")

	mgr := loader.NewManager()
	mgr.Register(
		fakeFeature{name: "broken", enabled: true, err: boom, loaded: &loaded},
		fakeFeature{name: "after", enabled: true, loaded: &loaded},
	)

	err := mgr.LoadAll(fiber.New())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.Empty(t, loaded)
}

func TestManager_Enabled(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(
		fakeFeature{name: "a", enabled: true},
		fakeFeature{name: "b", enabled: false},
	)

	enabled := mgr.Enabled()
	require.Len(t, enabled, 1)
	assert.Equal(t, "a", enabled[0].Name())
}
